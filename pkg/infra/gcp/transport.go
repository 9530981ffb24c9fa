package gcp

import (
	"crypto/tls"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/credentials/oauth"
)

// Dial builds the gRPC channel to the Pub/Sub endpoint at url. With NoAuth the channel is plaintext
// so that it can reach a local emulator; otherwise it uses TLS and attaches the OAuth token of creds
// to every call. Connection establishment is lazy and retried by gRPC itself.
func Dial(url string, creds *Credentials) (*grpc.ClientConn, error) {
	if creds == nil {
		return nil, goerr.Wrap(types.ErrInvalidConfig, "credentials are required to build a channel")
	}
	if url == "" {
		url = types.DefaultPubSubURL
	}

	var opts []grpc.DialOption
	switch creds.Method().(type) {
	case types.NoAuth:
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))

	default:
		ts := creds.TokenSource()
		if ts == nil {
			return nil, goerr.Wrap(types.ErrInvalidConfig, "no token source for authenticated channel").With("method", creds.Method())
		}
		opts = append(opts,
			grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})),
			grpc.WithPerRPCCredentials(oauth.TokenSource{TokenSource: ts}),
		)
	}

	conn, err := grpc.NewClient(url, opts...)
	if err != nil {
		return nil, goerr.Wrap(types.ErrChannel.Wrap(err), "failed to create gRPC client").With("url", url)
	}

	return conn, nil
}
