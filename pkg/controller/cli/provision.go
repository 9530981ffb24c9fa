package cli

import (
	"os"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/controller/cli/config"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/infra/gcp"
	"github.com/urfave/cli/v2"
)

func loadTopicConfigs(path string) ([]model.TopicConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidConfig.Wrap(err), "failed to read provision config").With("path", path)
	}

	configs, err := model.ParseTopicConfigs(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid provision config").With("path", path)
	}
	return configs, nil
}

func cmdProvision(pubsubCfg *config.PubSub) *cli.Command {
	var configPath string

	return &cli.Command{
		Name:  "provision",
		Usage: "Create topics and subscriptions that do not exist yet, mainly for an emulator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       `JSON file of [{"name": "<topic>", "subscriptions": ["<subscription>"]}]`,
				Aliases:     []string{"c"},
				EnvVars:     []string{"PSDEMO_PUBSUB_CONFIG", "PUBSUB_CONFIG"},
				Destination: &configPath,
				Required:    true,
			},
		},

		Action: func(c *cli.Context) error {
			configs, err := loadTopicConfigs(configPath)
			if err != nil {
				return err
			}

			clients, err := pubsubCfg.Connect(c.Context)
			if err != nil {
				return err
			}
			defer clients.Close()

			return gcp.NewAdmin(clients.PubSub()).Provision(c.Context, configs)
		},
	}
}
