package cli

import (
	"os"
	"time"

	"github.com/m-mizutani/psdemo/pkg/controller/cli/config"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/utils/logging"
	"github.com/urfave/cli/v2"
)

func Run(argv []string) error {
	var (
		logLevel  string
		logFormat string

		sentryCfg config.Sentry
		pubsubCfg config.PubSub
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			EnvVars:     []string{"PSDEMO_LOG_LEVEL"},
			Destination: &logLevel,
			Value:       "info",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json)",
			EnvVars:     []string{"PSDEMO_LOG_FORMAT"},
			Destination: &logFormat,
			Value:       "console",
		},
	}
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags, pubsubCfg.Flags()...)

	app := cli.App{
		Name:    "psdemo",
		Usage:   "Publish JSON records to Google Cloud Pub/Sub and receive them back",
		Version: types.AppVersion,
		Flags:   flags,

		Before: func(c *cli.Context) error {
			if err := logging.Configure(os.Stdout, logLevel, logFormat); err != nil {
				return err
			}
			if err := sentryCfg.Configure(); err != nil {
				return err
			}
			logging.Default().Debug("configured", "pubsub", &pubsubCfg, "sentry", &sentryCfg)
			return nil
		},

		Commands: []*cli.Command{
			cmdServe(&pubsubCfg),
			cmdPublish(&pubsubCfg),
			cmdProvision(&pubsubCfg),
			cmdReset(&pubsubCfg),
		},
	}

	defer sentryCfg.Flush(2 * time.Second)

	if err := app.Run(argv); err != nil {
		logging.Default().Error("exit with failure", "err", err)
		return err
	}

	return nil
}
