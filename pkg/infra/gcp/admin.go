package gcp

import (
	"context"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/utils/ctxutil"
)

// Admin manages topics and subscriptions. It is meant for emulators and test isolation, not for the
// message path.
type Admin struct {
	client *pubsub.Client
}

func NewAdmin(client *pubsub.Client) *Admin {
	return &Admin{client: client}
}

// Reset moves the delivery cursor of subscription to the current time. Messages published before
// the call and never acknowledged are not delivered afterwards.
func (x *Admin) Reset(ctx context.Context, subscription types.SubscriptionID) error {
	now := time.Now()
	if err := x.client.Subscription(subscription.String()).SeekToTime(ctx, now); err != nil {
		return goerr.Wrap(err, "failed to seek subscription").With("subscription", subscription).With("time", now)
	}

	ctxutil.Logger(ctx).Debug("subscription reset", "subscription", subscription, "time", now)
	return nil
}

// Provision creates the topics and subscriptions in configs that do not exist yet.
func (x *Admin) Provision(ctx context.Context, configs []model.TopicConfig) error {
	for _, cfg := range configs {
		topic, err := x.ensureTopic(ctx, cfg.Name)
		if err != nil {
			return err
		}

		for _, sub := range cfg.Subscriptions {
			if err := x.ensureSubscription(ctx, topic, sub); err != nil {
				return err
			}
		}
	}

	return nil
}

func (x *Admin) ensureTopic(ctx context.Context, id types.TopicID) (*pubsub.Topic, error) {
	topic := x.client.Topic(id.String())
	exists, err := topic.Exists(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up topic").With("topic", id)
	}
	if exists {
		ctxutil.Logger(ctx).Info("topic already exists", "topic", id)
		return topic, nil
	}

	created, err := x.client.CreateTopic(ctx, id.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create topic").With("topic", id)
	}
	ctxutil.Logger(ctx).Info("topic created", "topic", created.String())
	return created, nil
}

func (x *Admin) ensureSubscription(ctx context.Context, topic *pubsub.Topic, id types.SubscriptionID) error {
	exists, err := x.client.Subscription(id.String()).Exists(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to look up subscription").With("subscription", id)
	}
	if exists {
		ctxutil.Logger(ctx).Info("subscription already exists", "subscription", id)
		return nil
	}

	sub, err := x.client.CreateSubscription(ctx, id.String(), pubsub.SubscriptionConfig{Topic: topic})
	if err != nil {
		return goerr.Wrap(err, "failed to create subscription").With("subscription", id).With("topic", topic.ID())
	}
	ctxutil.Logger(ctx).Info("subscription created", "subscription", sub.String())
	return nil
}
