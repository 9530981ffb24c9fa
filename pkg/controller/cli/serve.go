package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/opac"
	"github.com/m-mizutani/psdemo/pkg/controller/cli/config"
	"github.com/m-mizutani/psdemo/pkg/controller/server"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/infra/buffer"
	"github.com/m-mizutani/psdemo/pkg/infra/gcp"
	"github.com/m-mizutani/psdemo/pkg/usecase"
	"github.com/m-mizutani/psdemo/pkg/utils/errutil"
	"github.com/m-mizutani/psdemo/pkg/utils/logging"
	"github.com/urfave/cli/v2"
)

func cmdServe(pubsubCfg *config.PubSub) *cli.Command {
	var (
		addr          string
		bufferSize    int
		policyFiles   cli.StringSlice
		googleIDToken bool
	)

	return &cli.Command{
		Name:    "serve",
		Usage:   "Start HTTP server with a publisher and a subscriber",
		Aliases: []string{"s"},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "HTTP server address",
				Aliases:     []string{"a"},
				EnvVars:     []string{"PSDEMO_ADDR"},
				Destination: &addr,
				Value:       "127.0.0.1:8080",
			},
			&cli.IntFlag{
				Name:        "buffer-size",
				Usage:       "Number of received records to keep, 0 for unbounded",
				EnvVars:     []string{"PSDEMO_BUFFER_SIZE"},
				Destination: &bufferSize,
			},
			&cli.StringSliceFlag{
				Name:        "policy-file",
				Usage:       "Policy file path to authorize requests",
				Aliases:     []string{"p"},
				EnvVars:     []string{"PSDEMO_POLICY_FILE"},
				Destination: &policyFiles,
			},
			&cli.BoolFlag{
				Name:        "google-id-token",
				Usage:       "Verify Google ID token in Authorization header and pass claims to policy",
				EnvVars:     []string{"PSDEMO_GOOGLE_ID_TOKEN"},
				Destination: &googleIDToken,
			},
		},

		Action: func(c *cli.Context) error {
			ctx := c.Context

			topic, err := pubsubCfg.Topic()
			if err != nil {
				return err
			}
			subscription, err := pubsubCfg.Subscription()
			if err != nil {
				return err
			}

			var serverOptions []server.Option
			if len(policyFiles.Value()) > 0 {
				policy, err := opac.New(opac.Files(policyFiles.Value()...))
				if err != nil {
					return goerr.Wrap(err, "failed to load policy files").With("files", policyFiles.Value())
				}
				serverOptions = append(serverOptions, server.WithPolicy(policy))
			}
			if googleIDToken {
				serverOptions = append(serverOptions, server.WithGoogleIDTokenValidation())
			}

			buf := buffer.New(bufferSize)
			if buf.Unbounded() {
				logging.Default().Warn("receive buffer is unbounded, memory grows with every received record")
			}

			clients, err := pubsubCfg.Connect(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := clients.Close(); err != nil {
					errutil.Handle(ctx, "failed to close Pub/Sub clients", err)
				}
			}()

			pub := gcp.NewPublisher(clients.PubSub(), topic)
			defer pub.Stop()

			uc := usecase.New(
				usecase.WithPublisher(pub),
				usecase.WithBuffer(buf),
			)

			errCh := make(chan error, 2)
			sub := gcp.NewSubscriber(clients.PubSub(), subscription, uc.HandleRecord,
				gcp.WithFailureFunc(func(from gcp.State, subscription types.SubscriptionID, err error) {
					errutil.Handle(ctx, "subscriber failed", goerr.Wrap(err, "subscriber stopped").With("from", from.String()))
					errCh <- err
				}),
			)
			if err := sub.Start(ctx); err != nil {
				return err
			}
			defer func() {
				sub.Stop()
				<-sub.Done()
			}()

			s := &http.Server{
				Addr:              addr,
				ReadHeaderTimeout: 3 * time.Second,
				Handler:           server.New(uc, serverOptions...),
			}

			go func() {
				logging.Default().Info("starting HTTP server", "addr", addr)
				if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- goerr.Wrap(err, "failed to listen").With("addr", addr)
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)

			select {
			case sig := <-sigCh:
				logging.Default().Info("shutting down", "signal", sig)
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := s.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server").With("signal", sig)
				}

			case err := <-errCh:
				return err
			}

			return nil
		},
	}
}
