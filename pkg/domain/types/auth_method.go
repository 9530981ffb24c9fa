package types

import (
	"strings"

	"github.com/m-mizutani/goerr"
)

// AuthMethod selects how the Pub/Sub clients authenticate. The set of variants is closed;
// see NoAuth, UserAccount and ServiceAccount.
type AuthMethod interface {
	String() string
	authMethod()
}

// NoAuth disables authentication and transport encryption. Only valid against an emulator.
type NoAuth struct{}

// UserAccount uses the application default credentials of the execution environment.
type UserAccount struct{}

// ServiceAccount reads a service account key file.
type ServiceAccount struct {
	CredentialsFile string
}

func (NoAuth) String() string         { return "NONE" }
func (UserAccount) String() string    { return "USER_ACCOUNT" }
func (ServiceAccount) String() string { return "SERVICE_ACCOUNT" }

func (NoAuth) authMethod()         {}
func (UserAccount) authMethod()    {}
func (ServiceAccount) authMethod() {}

func ParseAuthMethod(name, credentialsFile string) (AuthMethod, error) {
	switch strings.ToUpper(name) {
	case "NONE":
		return NoAuth{}, nil
	case "USER_ACCOUNT":
		return UserAccount{}, nil
	case "SERVICE_ACCOUNT":
		if credentialsFile == "" {
			return nil, goerr.Wrap(ErrInvalidConfig, "credentials file is required for SERVICE_ACCOUNT")
		}
		return ServiceAccount{CredentialsFile: credentialsFile}, nil
	default:
		return nil, goerr.Wrap(ErrInvalidConfig, "unexpected authentication method").With("method", name)
	}
}
