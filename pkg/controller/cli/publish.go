package cli

import (
	"github.com/m-mizutani/psdemo/pkg/controller/cli/config"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
	"github.com/m-mizutani/psdemo/pkg/infra/gcp"
	"github.com/m-mizutani/psdemo/pkg/usecase"
	"github.com/urfave/cli/v2"
)

func cmdPublish(pubsubCfg *config.PubSub) *cli.Command {
	var record model.Record

	return &cli.Command{
		Name:  "publish",
		Usage: "Publish a single record",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:        "id",
				Usage:       "Record ID",
				Destination: &record.ID,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "message",
				Usage:       "Record message",
				Aliases:     []string{"m"},
				Destination: &record.Message,
				Required:    true,
			},
		},

		Action: func(c *cli.Context) error {
			topic, err := pubsubCfg.Topic()
			if err != nil {
				return err
			}

			clients, err := pubsubCfg.Connect(c.Context)
			if err != nil {
				return err
			}
			defer clients.Close()

			pub := gcp.NewPublisher(clients.PubSub(), topic)
			defer pub.Stop()

			uc := usecase.New(usecase.WithPublisher(pub))
			return uc.Publish(c.Context, &record)
		},
	}
}
