package gcp

import (
	"context"

	"cloud.google.com/go/pubsub"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/utils/ctxutil"
	"github.com/m-mizutani/psdemo/pkg/utils/logging"
)

// Publisher sends records to a single topic. Batching, retry and flow control are left to the
// client library.
type Publisher struct {
	topic *pubsub.Topic
	id    types.TopicID
}

func NewPublisher(client *pubsub.Client, id types.TopicID) *Publisher {
	logging.Default().Info("creating publisher", "topic", id)
	return &Publisher{
		topic: client.Topic(id.String()),
		id:    id,
	}
}

// Publish returns once the broker has assigned a message ID to the record.
func (x *Publisher) Publish(ctx context.Context, record *model.Record) error {
	msg, err := Encode(record)
	if err != nil {
		return goerr.Wrap(err, "failed to encode record").With("topic", x.id)
	}

	msgID, err := x.topic.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return goerr.Wrap(types.ErrPublish.Wrap(err), "broker rejected message").With("topic", x.id).With("id", record.ID)
	}

	ctxutil.Logger(ctx).Debug("published message", "id", record.ID, "message_id", msgID, "topic", x.id)
	return nil
}

// Stop flushes outstanding messages and releases the topic's goroutines.
func (x *Publisher) Stop() {
	x.topic.Stop()
}
