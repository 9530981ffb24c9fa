package gcp

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"cloud.google.com/go/pubsub"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/utils/ctxutil"
	"github.com/m-mizutani/psdemo/pkg/utils/errutil"
	"github.com/m-mizutani/psdemo/pkg/utils/logging"
)

// HandlerFunc receives every successfully decoded record. Returning an error makes the broker
// redeliver the message.
type HandlerFunc func(ctx context.Context, record *model.Record) error

// FailureFunc is called once when the subscriber enters StateFailed.
type FailureFunc func(from State, subscription types.SubscriptionID, err error)

type Stats struct {
	Received uint64
	Dropped  uint64
	Retried  uint64
}

type Subscriber struct {
	sub       *pubsub.Subscription
	id        types.SubscriptionID
	handler   HandlerFunc
	onFailure FailureFunc

	mutex  sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}

	received atomic.Uint64
	dropped  atomic.Uint64
	retried  atomic.Uint64
}

type SubscriberOption func(*Subscriber)

func WithFailureFunc(f FailureFunc) SubscriberOption {
	return func(x *Subscriber) {
		x.onFailure = f
	}
}

func WithReceiveSettings(settings pubsub.ReceiveSettings) SubscriberOption {
	return func(x *Subscriber) {
		x.sub.ReceiveSettings = settings
	}
}

func NewSubscriber(client *pubsub.Client, id types.SubscriptionID, handler HandlerFunc, options ...SubscriberOption) *Subscriber {
	logging.Default().Info("creating subscriber", "subscription", id)

	x := &Subscriber{
		sub:       client.Subscription(id.String()),
		id:        id,
		handler:   handler,
		onFailure: logFailure,
		done:      make(chan struct{}),
	}
	for _, opt := range options {
		opt(x)
	}

	return x
}

func logFailure(from State, subscription types.SubscriptionID, err error) {
	logging.Default().Error("an error occurred while subscribing",
		"subscription", subscription,
		"previous_state", from.String(),
		"error", err,
	)
}

func (x *Subscriber) State() State {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return x.state
}

func (x *Subscriber) Stats() Stats {
	return Stats{
		Received: x.received.Load(),
		Dropped:  x.dropped.Load(),
		Retried:  x.retried.Load(),
	}
}

// Done is closed when message delivery has finished after Stop or a failure.
func (x *Subscriber) Done() <-chan struct{} {
	return x.done
}

// Start blocks until the subscriber is running. The subscription is looked up on the broker first,
// so a nil return means the channel, the credentials and the subscription are all usable and any
// message published from now on will be delivered.
func (x *Subscriber) Start(ctx context.Context) error {
	x.mutex.Lock()
	if x.state != StateNew {
		state := x.state
		x.mutex.Unlock()
		return goerr.Wrap(types.ErrInvalidState, "subscriber can be started only once").With("state", state.String())
	}
	x.state = StateStarting
	x.mutex.Unlock()

	exists, err := x.sub.Exists(ctx)
	if err != nil {
		err = goerr.Wrap(err, "failed to look up subscription").With("subscription", x.id)
		x.fail(StateStarting, err)
		return err
	}
	if !exists {
		err := goerr.Wrap(types.ErrSubscriptionNotFound, "cannot start subscriber").With("subscription", x.id)
		x.fail(StateStarting, err)
		return err
	}

	receiveCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	x.mutex.Lock()
	if x.state != StateStarting {
		// Stop was called while looking up the subscription
		x.state = StateTerminated
		x.mutex.Unlock()
		cancel()
		close(x.done)
		return goerr.Wrap(types.ErrInvalidState, "subscriber stopped while starting").With("subscription", x.id)
	}
	x.cancel = cancel
	x.state = StateRunning
	x.mutex.Unlock()

	go x.receive(receiveCtx)

	ctxutil.Logger(ctx).Info("subscriber is running", "subscription", x.id)
	return nil
}

// Stop requests shutdown and returns immediately. Callbacks in flight may still be running when it
// returns; wait on Done to observe termination.
func (x *Subscriber) Stop() {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	switch x.state {
	case StateNew:
		x.state = StateTerminated
		close(x.done)
	case StateStarting:
		x.state = StateStopping
	case StateRunning:
		x.state = StateStopping
		x.cancel()
	}
}

func (x *Subscriber) fail(from State, err error) {
	x.mutex.Lock()
	x.state = StateFailed
	x.mutex.Unlock()
	close(x.done)

	x.onFailure(from, x.id, err)
}

func (x *Subscriber) receive(ctx context.Context) {
	err := x.sub.Receive(ctx, x.deliver)
	stats := x.Stats()

	if err != nil && !errors.Is(err, context.Canceled) {
		x.fail(x.State(), goerr.Wrap(err, "receive terminated").With("subscription", x.id))
		return
	}

	x.mutex.Lock()
	x.state = StateTerminated
	x.mutex.Unlock()
	close(x.done)

	logging.Default().Info("subscriber terminated",
		"subscription", x.id,
		"received", stats.Received,
		"dropped", stats.Dropped,
		"retried", stats.Retried,
	)
}

type outcome int

const (
	// decoded and handled
	outcomeDone outcome = iota
	// payload can never be decoded, redelivery would loop forever
	outcomeDrop
	// unexpected failure, let the broker redeliver
	outcomeRetry
)

// deliver may be called concurrently by the client library.
func (x *Subscriber) deliver(ctx context.Context, msg *pubsub.Message) {
	switch x.process(ctx, msg) {
	case outcomeRetry:
		msg.Nack()
	default:
		msg.Ack()
	}
}

func (x *Subscriber) process(ctx context.Context, msg *pubsub.Message) (result outcome) {
	x.received.Add(1)
	ctx, logger := ctxutil.WithLogAttrs(ctx, "subscription", x.id, "message_id", msg.ID)

	defer func() {
		if r := recover(); r != nil {
			errutil.Handle(ctx, "could not process message",
				goerr.New("panic in message handler").With("panic", r).With("message_id", msg.ID))
			result = outcomeRetry
		}

		switch result {
		case outcomeDrop:
			x.dropped.Add(1)
		case outcomeRetry:
			x.retried.Add(1)
		}
	}()

	logger.Debug("received payload", "data", string(msg.Data))

	record, err := Decode(msg)
	if err != nil {
		errutil.Handle(ctx, "invalid JSON offered, cannot recover",
			goerr.Wrap(err, "failed to decode message").With("subscription", x.id).With("data", string(msg.Data)))
		return outcomeDrop
	}

	if err := x.handler(ctx, record); err != nil {
		errutil.Handle(ctx, "could not process message",
			goerr.Wrap(err, "handler failed").With("subscription", x.id).With("id", record.ID))
		return outcomeRetry
	}

	logger.Debug("received message", "id", record.ID)
	return outcomeDone
}
