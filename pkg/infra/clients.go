package infra

import (
	"context"

	"cloud.google.com/go/pubsub"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/infra/gcp"
	"github.com/m-mizutani/psdemo/pkg/utils/logging"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Clients owns the connection-level resources shared by the publisher, the subscriber and the
// admin helper: one credentials handle, one gRPC channel and one Pub/Sub client.
type Clients struct {
	project    types.ProjectID
	authMethod types.AuthMethod
	url        string

	creds  *gcp.Credentials
	conn   *grpc.ClientConn
	pubsub *pubsub.Client
}

func (x *Clients) PubSub() *pubsub.Client        { return x.pubsub }
func (x *Clients) Credentials() *gcp.Credentials { return x.creds }
func (x *Clients) Project() types.ProjectID      { return x.project }

type Option func(*Clients)

func WithAuthMethod(method types.AuthMethod) Option {
	return func(clients *Clients) {
		clients.authMethod = method
	}
}

func WithURL(url string) Option {
	return func(clients *Clients) {
		clients.url = url
	}
}

func New(ctx context.Context, project types.ProjectID, options ...Option) (*Clients, error) {
	clients := &Clients{
		project:    project,
		authMethod: types.UserAccount{},
		url:        types.DefaultPubSubURL,
	}
	for _, option := range options {
		option(clients)
	}

	if project == "" {
		return nil, goerr.Wrap(types.ErrInvalidConfig, "project is required")
	}

	creds, err := gcp.NewCredentials(ctx, clients.authMethod)
	if err != nil {
		return nil, err
	}
	clients.creds = creds

	conn, err := gcp.Dial(clients.url, creds)
	if err != nil {
		return nil, err
	}
	clients.conn = conn

	client, err := pubsub.NewClient(ctx, project.String(), option.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		return nil, goerr.Wrap(types.ErrChannel.Wrap(err), "failed to create Pub/Sub client").With("project", project)
	}
	clients.pubsub = client

	logging.Default().Info("connected to Pub/Sub",
		"project", project,
		"url", clients.url,
		"credentials", creds,
	)
	return clients, nil
}

// Close releases the client and then the channel it runs on. A channel already closed by the
// client is not reported as an error.
func (x *Clients) Close() error {
	if err := x.pubsub.Close(); err != nil && status.Code(err) != codes.Canceled {
		_ = x.conn.Close()
		return goerr.Wrap(err, "failed to close Pub/Sub client")
	}
	if err := x.conn.Close(); err != nil && status.Code(err) != codes.Canceled {
		return goerr.Wrap(err, "failed to close channel")
	}
	return nil
}
