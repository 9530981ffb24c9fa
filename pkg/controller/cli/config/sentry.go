package config

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/utils/logging"

	"github.com/urfave/cli/v2"
)

type Sentry struct {
	dsn     string
	env     string
	enabled bool
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting",
			EnvVars:     []string{"PSDEMO_SENTRY_DSN"},
			Destination: &x.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			EnvVars:     []string{"PSDEMO_SENTRY_ENV"},
			Destination: &x.env,
		},
	}
}

func (x *Sentry) Configure() error {
	if x.dsn == "" {
		logging.Default().Debug("sentry is not enabled")
		return nil
	}

	logging.Default().Info("Enable Sentry", "sentry", x)
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.env,
		Release:     "psdemo@" + types.AppVersion,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize Sentry").With("env", x.env)
	}
	x.enabled = true

	return nil
}

// Flush waits for queued events so that errors reported right before exit are delivered.
func (x *Sentry) Flush(timeout time.Duration) {
	if x.enabled && !sentry.Flush(timeout) {
		logging.Default().Warn("some Sentry events were not sent", "timeout", timeout)
	}
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dsn", x.dsn),
		slog.String("env", x.env),
	)
}
