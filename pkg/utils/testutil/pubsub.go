package testutil

import (
	"context"
	"testing"

	"cloud.google.com/go/pubsub/pstest"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/infra"
	"github.com/m-mizutani/psdemo/pkg/infra/gcp"
)

const (
	TestProject      types.ProjectID      = "my-gcp-project"
	TestTopic        types.TopicID        = "my-topic"
	TestSubscription types.SubscriptionID = "my-subscription"
)

// NewFakePubSub starts an in-process Pub/Sub server with TestTopic and TestSubscription, and
// returns clients connected to it without authentication.
func NewFakePubSub(t *testing.T) *infra.Clients {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	return ConnectPubSub(t, srv.Addr)
}

// ConnectPubSub connects to an unauthenticated broker at addr and provisions TestTopic and
// TestSubscription.
func ConnectPubSub(t *testing.T, addr string) *infra.Clients {
	t.Helper()

	ctx := context.Background()
	clients := gt.R1(infra.New(ctx, TestProject,
		infra.WithAuthMethod(types.NoAuth{}),
		infra.WithURL(addr),
	)).NoError(t)
	t.Cleanup(func() { _ = clients.Close() })

	gt.NoError(t, gcp.NewAdmin(clients.PubSub()).Provision(ctx, []model.TopicConfig{
		{Name: TestTopic, Subscriptions: []types.SubscriptionID{TestSubscription}},
	}))

	return clients
}
