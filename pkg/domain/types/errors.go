package types

import "net/http"

type Error struct {
	code  int
	msg   string
	cause error
}

func (x Error) Error() string {
	msg := x.msg
	if x.cause != nil {
		msg += ": " + x.cause.Error()
	}
	return msg
}
func (x Error) Code() int { return x.code }

// Message is the category text without the wrapped cause.
func (x Error) Message() string { return x.msg }
func (x Error) Wrap(cause error) Error {
	return Error{code: x.code, msg: x.msg, cause: cause}
}
func (x Error) Unwrap() error { return x.cause }

// Is matches by category so that a wrapped Error still satisfies errors.Is against its sentinel.
func (x Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	return x.code == t.code && x.msg == t.msg
}

var (
	ErrInvalidContentType = Error{code: http.StatusBadRequest, msg: "unsupported Content-Type"}
	ErrInvalidInput       = Error{code: http.StatusBadRequest, msg: "invalid input"}
	ErrForbidden          = Error{code: http.StatusForbidden, msg: "forbidden"}

	// startup
	ErrInvalidConfig    = Error{code: http.StatusInternalServerError, msg: "invalid configuration"}
	ErrCredentialsIO    = Error{code: http.StatusInternalServerError, msg: "failed to read credentials"}
	ErrCredentialsParse = Error{code: http.StatusInternalServerError, msg: "failed to parse credentials"}
	ErrChannel          = Error{code: http.StatusInternalServerError, msg: "failed to build transport channel"}

	// message path
	ErrEncodeRecord = Error{code: http.StatusInternalServerError, msg: "failed to encode record"}
	ErrDecodeRecord = Error{code: http.StatusBadRequest, msg: "failed to decode record"}
	ErrPublish      = Error{code: http.StatusInternalServerError, msg: "failed to publish record"}

	// subscriber lifecycle
	ErrSubscriptionNotFound = Error{code: http.StatusInternalServerError, msg: "subscription not found"}
	ErrInvalidState         = Error{code: http.StatusInternalServerError, msg: "invalid subscriber state"}
)
