package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/infra"
	"github.com/urfave/cli/v2"
)

// PubSub holds the connection settings shared by all commands.
type PubSub struct {
	project         string
	authMethod      string
	credentialsFile string
	url             string
	topic           string
	subscription    string
}

func (x *PubSub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project",
			Usage:       "Google Cloud project ID",
			EnvVars:     []string{"PSDEMO_PROJECT", "PUBSUB_PROJECT_ID"},
			Destination: &x.project,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "auth-method",
			Usage:       "Authentication method (NONE, USER_ACCOUNT, SERVICE_ACCOUNT)",
			EnvVars:     []string{"PSDEMO_AUTH_METHOD"},
			Destination: &x.authMethod,
			Value:       types.UserAccount{}.String(),
		},
		&cli.StringFlag{
			Name:        "credentials-file",
			Usage:       "Service account key file, required for SERVICE_ACCOUNT",
			EnvVars:     []string{"PSDEMO_CREDENTIALS_FILE"},
			Destination: &x.credentialsFile,
		},
		&cli.StringFlag{
			Name:        "pubsub-url",
			Usage:       "Pub/Sub endpoint as host:port",
			EnvVars:     []string{"PSDEMO_PUBSUB_URL", "PUBSUB_EMULATOR_HOST"},
			Destination: &x.url,
			Value:       types.DefaultPubSubURL,
		},
		&cli.StringFlag{
			Name:        "topic",
			Usage:       "Topic ID to publish to",
			EnvVars:     []string{"PSDEMO_TOPIC"},
			Destination: &x.topic,
		},
		&cli.StringFlag{
			Name:        "subscription",
			Usage:       "Subscription ID to receive from",
			EnvVars:     []string{"PSDEMO_SUBSCRIPTION"},
			Destination: &x.subscription,
		},
	}
}

func (x *PubSub) AuthMethod() (types.AuthMethod, error) {
	return types.ParseAuthMethod(x.authMethod, x.credentialsFile)
}

func (x *PubSub) Topic() (types.TopicID, error) {
	if x.topic == "" {
		return "", goerr.Wrap(types.ErrInvalidConfig, "--topic is required")
	}
	return types.TopicID(x.topic), nil
}

func (x *PubSub) Subscription() (types.SubscriptionID, error) {
	if x.subscription == "" {
		return "", goerr.Wrap(types.ErrInvalidConfig, "--subscription is required")
	}
	return types.SubscriptionID(x.subscription), nil
}

// Connect resolves credentials and opens the channel to the broker.
func (x *PubSub) Connect(ctx context.Context) (*infra.Clients, error) {
	method, err := x.AuthMethod()
	if err != nil {
		return nil, err
	}

	return infra.New(ctx, types.ProjectID(x.project),
		infra.WithAuthMethod(method),
		infra.WithURL(x.url),
	)
}

func (x *PubSub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", x.project),
		slog.String("auth_method", x.authMethod),
		slog.String("credentials_file", x.credentialsFile),
		slog.String("url", x.url),
		slog.String("topic", x.topic),
		slog.String("subscription", x.subscription),
	)
}
