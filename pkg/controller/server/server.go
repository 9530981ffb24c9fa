package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/interfaces"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/utils/ctxutil"
	"github.com/m-mizutani/psdemo/pkg/utils/errutil"
)

type config struct {
	policy                interfaces.Policy
	validateGoogleIDToken bool
}

type Option func(*config)

func WithPolicy(policy interfaces.Policy) Option {
	return func(cfg *config) {
		cfg.policy = policy
	}
}

func WithGoogleIDTokenValidation() Option {
	return func(cfg *config) {
		cfg.validateGoogleIDToken = true
	}
}

func New(uc interfaces.UseCases, options ...Option) http.Handler {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}

	route := chi.NewRouter()
	route.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK:" + types.AppVersion))
	})
	route.Group(func(r chi.Router) {
		r.Use(Logger)
		if cfg.validateGoogleIDToken {
			r.Use(authGoogleIDToken())
		}
		if cfg.policy != nil {
			r.Use(authWithPolicy(cfg.policy))
		}

		r.Post("/publish", handlePublish(uc))
		r.Get("/messages", handleMessages(uc))
	})

	return route
}

// handleError answers client errors with the category message only and server errors with the
// status text. The full error goes to the log and Sentry.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	body := http.StatusText(code)

	var xErr types.Error
	if errors.As(err, &xErr) && xErr.Code() < http.StatusInternalServerError {
		code = xErr.Code()
		body = xErr.Message()
	}

	if code >= http.StatusInternalServerError {
		errutil.Handle(r.Context(), "failed to handle request", err)
	} else {
		ctxutil.Logger(r.Context()).Info("rejected request", "status", code, "error", err)
	}
	http.Error(w, body, code)
}

func readRecord(r *http.Request) (*model.Record, error) {
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return nil, goerr.Wrap(types.ErrInvalidContentType, "request body must be JSON").With("content_type", contentType)
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidInput.Wrap(err), "failed to read body")
	}

	record, err := model.ParseRecord(body)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrap(err)
	}
	return record, nil
}

func handlePublish(uc interfaces.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := readRecord(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		if err := uc.Publish(r.Context(), record); err != nil {
			handleError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func handleMessages(uc interfaces.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records := uc.Records(r.Context())
		if records == nil {
			records = []model.Record{}
		}

		raw, err := json.Marshal(records)
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to encode records"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(raw)
	}
}
