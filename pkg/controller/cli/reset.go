package cli

import (
	"github.com/m-mizutani/psdemo/pkg/controller/cli/config"
	"github.com/m-mizutani/psdemo/pkg/infra/gcp"
	"github.com/urfave/cli/v2"
)

func cmdReset(pubsubCfg *config.PubSub) *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "Skip all messages published to the subscription so far",
		Action: func(c *cli.Context) error {
			subscription, err := pubsubCfg.Subscription()
			if err != nil {
				return err
			}

			clients, err := pubsubCfg.Connect(c.Context)
			if err != nil {
				return err
			}
			defer clients.Close()

			return gcp.NewAdmin(clients.PubSub()).Reset(c.Context, subscription)
		},
	}
}
