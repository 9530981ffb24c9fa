package gcp

import (
	"context"
	"log/slog"
	"os"

	"cloud.google.com/go/pubsub"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var scopes = []string{pubsub.ScopePubSub, pubsub.ScopeCloudPlatform}

// Credentials is resolved once per process and shared by the transport channel and every client
// built on it. A NoAuth handle carries no token source.
type Credentials struct {
	method types.AuthMethod
	google *google.Credentials
}

func (x *Credentials) Method() types.AuthMethod { return x.method }

func (x *Credentials) TokenSource() oauth2.TokenSource {
	if x.google == nil {
		return nil
	}
	return x.google.TokenSource
}

func (x *Credentials) ProjectID() string {
	if x.google == nil {
		return ""
	}
	return x.google.ProjectID
}

func (x *Credentials) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("method", x.method.String())}
	if sa, ok := x.method.(types.ServiceAccount); ok {
		attrs = append(attrs, slog.String("credentials_file", sa.CredentialsFile))
	}
	if x.google != nil && x.google.ProjectID != "" {
		attrs = append(attrs, slog.String("project_id", x.google.ProjectID))
	}
	return slog.GroupValue(attrs...)
}

func NewCredentials(ctx context.Context, method types.AuthMethod) (*Credentials, error) {
	switch m := method.(type) {
	case types.NoAuth:
		return &Credentials{method: m}, nil

	case types.UserAccount:
		creds, err := google.FindDefaultCredentials(ctx, scopes...)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidConfig.Wrap(err), "no application default credentials found")
		}
		return &Credentials{method: m, google: creds}, nil

	case types.ServiceAccount:
		return newServiceAccountCredentials(ctx, m)

	default:
		return nil, goerr.Wrap(types.ErrInvalidConfig, "unexpected authentication method").With("method", method)
	}
}

func newServiceAccountCredentials(ctx context.Context, method types.ServiceAccount) (*Credentials, error) {
	data, err := os.ReadFile(method.CredentialsFile)
	if err != nil {
		return nil, goerr.Wrap(types.ErrCredentialsIO.Wrap(err), "failed to read service account key").With("path", method.CredentialsFile)
	}

	// JWTConfigFromJSON rejects anything that is not a service account key
	if _, err := google.JWTConfigFromJSON(data, scopes...); err != nil {
		return nil, goerr.Wrap(types.ErrCredentialsParse.Wrap(err), "not a service account key").With("path", method.CredentialsFile)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, scopes...)
	if err != nil {
		return nil, goerr.Wrap(types.ErrCredentialsParse.Wrap(err), "failed to parse service account key").With("path", method.CredentialsFile)
	}

	return &Credentials{method: method, google: creds}, nil
}
