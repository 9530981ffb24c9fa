package gcp_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/infra"
	"github.com/m-mizutani/psdemo/pkg/infra/buffer"
	"github.com/m-mizutani/psdemo/pkg/infra/gcp"
	"github.com/m-mizutani/psdemo/pkg/utils/testutil"
	"github.com/ory/dockertest"
	"github.com/ory/dockertest/docker"
)

// startEmulator runs the Pub/Sub emulator in a container and returns its host:port.
func startEmulator(t *testing.T, image string) string {
	t.Helper()

	pool := gt.R1(dockertest.NewPool("")).NoError(t)
	pool.MaxWait = 3 * time.Minute

	emulatorPort := testutil.LoadEnvOr("TEST_PUBSUB_EMULATOR_PORT", "8432")

	repo, tag, found := strings.Cut(image, ":")
	if !found {
		tag = "latest"
	}

	res := gt.R1(pool.RunWithOptions(
		&dockertest.RunOptions{
			Repository:   repo,
			Tag:          tag,
			ExposedPorts: []string{emulatorPort + "/tcp"},
			Cmd: []string{
				"gcloud", "beta", "emulators", "pubsub", "start",
				"--project=" + testutil.TestProject.String(),
				"--host-port=0.0.0.0:" + emulatorPort,
			},
		}, func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		},
	)).NoError(t)
	t.Cleanup(func() {
		if err := pool.Purge(res); err != nil {
			t.Logf("failed to purge emulator container: %v", err)
		}
	})

	addr := res.GetHostPort(emulatorPort + "/tcp")

	gt.NoError(t, pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		clients, err := infra.New(ctx, testutil.TestProject,
			infra.WithAuthMethod(types.NoAuth{}),
			infra.WithURL(addr),
		)
		if err != nil {
			return err
		}
		defer clients.Close()

		_, err = clients.PubSub().Topic(testutil.TestTopic.String()).Exists(ctx)
		return err
	}))

	return addr
}

func TestEmulatorPublishAndSubscribe(t *testing.T) {
	image := testutil.LoadEnv(t, "TEST_PUBSUB_EMULATOR_IMAGE")
	clients := testutil.ConnectPubSub(t, startEmulator(t, image))

	buf := buffer.New(0)
	startSubscriber(t, clients, appendTo(buf))

	pub := gcp.NewPublisher(clients.PubSub(), testutil.TestTopic)
	defer pub.Stop()
	gt.NoError(t, pub.Publish(context.Background(), &model.Record{ID: 1, Message: "message"}))

	testutil.Eventually(t, receiveTimeout, func() bool { return buf.Len() == 1 })
	gt.Equal(t, buf.Records(), []model.Record{{ID: 1, Message: "message"}})
}
