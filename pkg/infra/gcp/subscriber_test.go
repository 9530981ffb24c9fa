package gcp_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/infra"
	"github.com/m-mizutani/psdemo/pkg/infra/buffer"
	"github.com/m-mizutani/psdemo/pkg/infra/gcp"
	"github.com/m-mizutani/psdemo/pkg/utils/testutil"
)

const receiveTimeout = 5 * time.Second

func startSubscriber(t *testing.T, clients *infra.Clients, handler gcp.HandlerFunc) *gcp.Subscriber {
	t.Helper()

	sub := gcp.NewSubscriber(clients.PubSub(), testutil.TestSubscription, handler)
	gt.NoError(t, sub.Start(context.Background()))
	t.Cleanup(func() {
		sub.Stop()
		<-sub.Done()
	})
	return sub
}

func appendTo(buf *buffer.Buffer) gcp.HandlerFunc {
	return func(ctx context.Context, record *model.Record) error {
		buf.Append(*record)
		return nil
	}
}

func publishRaw(t *testing.T, clients *infra.Clients, data []byte) {
	t.Helper()

	ctx := context.Background()
	topic := clients.PubSub().Topic(testutil.TestTopic.String())
	defer topic.Stop()
	gt.R1(topic.Publish(ctx, &pubsub.Message{Data: data}).Get(ctx)).NoError(t)
}

func TestPublishAndSubscribe(t *testing.T) {
	ctx := context.Background()
	clients := testutil.NewFakePubSub(t)
	buf := buffer.New(0)

	sub := startSubscriber(t, clients, appendTo(buf))
	gt.Equal(t, sub.State(), gcp.StateRunning)

	pub := gcp.NewPublisher(clients.PubSub(), testutil.TestTopic)
	defer pub.Stop()

	gt.NoError(t, pub.Publish(ctx, &model.Record{ID: 1, Message: "message"}))

	testutil.Eventually(t, receiveTimeout, func() bool { return buf.Len() == 1 })
	testutil.Consistently(t, 300*time.Millisecond, func() bool { return buf.Len() == 1 })
	gt.Equal(t, buf.Records(), []model.Record{{ID: 1, Message: "message"}})
	gt.Equal(t, sub.Stats(), gcp.Stats{Received: 1})
}

func TestPublishInvalidRecord(t *testing.T) {
	clients := testutil.NewFakePubSub(t)
	pub := gcp.NewPublisher(clients.PubSub(), testutil.TestTopic)
	defer pub.Stop()

	err := pub.Publish(context.Background(), &model.Record{ID: 1, Message: "\xff"})
	gt.Equal(t, errors.Is(err, types.ErrEncodeRecord), true)
}

func TestPublishUnknownTopic(t *testing.T) {
	clients := testutil.NewFakePubSub(t)
	pub := gcp.NewPublisher(clients.PubSub(), "no-such-topic")
	defer pub.Stop()

	err := pub.Publish(context.Background(), &model.Record{ID: 1, Message: "message"})
	gt.Equal(t, errors.Is(err, types.ErrPublish), true)
}

func TestSubscriberDropsInvalidPayload(t *testing.T) {
	clients := testutil.NewFakePubSub(t)
	buf := buffer.New(0)
	sub := startSubscriber(t, clients, appendTo(buf))

	publishRaw(t, clients, []byte("test"))

	testutil.Eventually(t, receiveTimeout, func() bool { return sub.Stats().Dropped == 1 })
	// acknowledged, so never redelivered
	testutil.Consistently(t, 500*time.Millisecond, func() bool {
		return sub.Stats() == gcp.Stats{Received: 1, Dropped: 1}
	})
	gt.Equal(t, buf.Len(), 0)
	gt.Equal(t, sub.State(), gcp.StateRunning)
}

func TestSubscriberRedeliversOnHandlerError(t *testing.T) {
	clients := testutil.NewFakePubSub(t)
	buf := buffer.New(0)

	var calls atomic.Int32
	sub := startSubscriber(t, clients, func(ctx context.Context, record *model.Record) error {
		if calls.Add(1) == 1 {
			return errors.New("temporary failure")
		}
		buf.Append(*record)
		return nil
	})

	pub := gcp.NewPublisher(clients.PubSub(), testutil.TestTopic)
	defer pub.Stop()
	gt.NoError(t, pub.Publish(context.Background(), &model.Record{ID: 5, Message: "retry me"}))

	testutil.Eventually(t, receiveTimeout, func() bool { return buf.Len() == 1 })
	gt.Equal(t, buf.Records(), []model.Record{{ID: 5, Message: "retry me"}})
	gt.Equal(t, sub.Stats().Retried, uint64(1))
	gt.Equal(t, calls.Load(), int32(2))
}

func TestSubscriberProcess(t *testing.T) {
	clients := testutil.NewFakePubSub(t)
	ctx := context.Background()

	type testCase struct {
		data     string
		handler  gcp.HandlerFunc
		expect   gcp.Outcome
		expCalls int
	}

	runTest := func(tc testCase) func(t *testing.T) {
		return func(t *testing.T) {
			var (
				mutex sync.Mutex
				calls int
			)
			sub := gcp.NewSubscriber(clients.PubSub(), testutil.TestSubscription,
				func(ctx context.Context, record *model.Record) error {
					mutex.Lock()
					calls++
					mutex.Unlock()
					return tc.handler(ctx, record)
				})

			result := sub.Process(ctx, &pubsub.Message{ID: "m1", Data: []byte(tc.data)})
			gt.Equal(t, result, tc.expect)
			gt.Equal(t, calls, tc.expCalls)
		}
	}

	ok := func(ctx context.Context, record *model.Record) error { return nil }

	t.Run("valid payload", runTest(testCase{
		data:     `{"id": 1, "message": "message"}`,
		handler:  ok,
		expect:   gcp.OutcomeDone,
		expCalls: 1,
	}))

	t.Run("invalid JSON is dropped", runTest(testCase{
		data:     `{"id": 1, "message":`,
		handler:  ok,
		expect:   gcp.OutcomeDrop,
		expCalls: 0,
	}))

	t.Run("schema violation is dropped", runTest(testCase{
		data:     `{"id": "one", "message": "message"}`,
		handler:  ok,
		expect:   gcp.OutcomeDrop,
		expCalls: 0,
	}))

	t.Run("handler error is retried", runTest(testCase{
		data: `{"id": 1, "message": "message"}`,
		handler: func(ctx context.Context, record *model.Record) error {
			return errors.New("sink unavailable")
		},
		expect:   gcp.OutcomeRetry,
		expCalls: 1,
	}))

	t.Run("handler panic is retried", runTest(testCase{
		data: `{"id": 1, "message": "message"}`,
		handler: func(ctx context.Context, record *model.Record) error {
			panic("unexpected")
		},
		expect:   gcp.OutcomeRetry,
		expCalls: 1,
	}))
}

func TestSubscriberStartMissingSubscription(t *testing.T) {
	clients := testutil.NewFakePubSub(t)

	type failure struct {
		from gcp.State
		sub  types.SubscriptionID
		err  error
	}
	var failures []failure

	sub := gcp.NewSubscriber(clients.PubSub(), "no-such-subscription",
		func(ctx context.Context, record *model.Record) error { return nil },
		gcp.WithFailureFunc(func(from gcp.State, subscription types.SubscriptionID, err error) {
			failures = append(failures, failure{from: from, sub: subscription, err: err})
		}),
	)

	err := sub.Start(context.Background())
	gt.Equal(t, errors.Is(err, types.ErrSubscriptionNotFound), true)
	gt.Equal(t, sub.State(), gcp.StateFailed)

	gt.Equal(t, len(failures), 1)
	gt.Equal(t, failures[0].from, gcp.StateStarting)
	gt.Equal(t, failures[0].sub, types.SubscriptionID("no-such-subscription"))
	gt.Equal(t, errors.Is(failures[0].err, types.ErrSubscriptionNotFound), true)

	select {
	case <-sub.Done():
	default:
		t.Fatal("done channel must be closed after failure")
	}
}

func TestSubscriberLifecycle(t *testing.T) {
	clients := testutil.NewFakePubSub(t)
	sub := gcp.NewSubscriber(clients.PubSub(), testutil.TestSubscription,
		func(ctx context.Context, record *model.Record) error { return nil })
	gt.Equal(t, sub.State(), gcp.StateNew)

	gt.NoError(t, sub.Start(context.Background()))
	gt.Equal(t, sub.State(), gcp.StateRunning)

	err := sub.Start(context.Background())
	gt.Equal(t, errors.Is(err, types.ErrInvalidState), true)

	sub.Stop()

	select {
	case <-sub.Done():
	case <-time.After(receiveTimeout):
		t.Fatal("subscriber did not terminate")
	}
	gt.Equal(t, sub.State(), gcp.StateTerminated)
}

func TestSubscriberStopBeforeStart(t *testing.T) {
	clients := testutil.NewFakePubSub(t)
	sub := gcp.NewSubscriber(clients.PubSub(), testutil.TestSubscription,
		func(ctx context.Context, record *model.Record) error { return nil })

	sub.Stop()
	gt.Equal(t, sub.State(), gcp.StateTerminated)
	<-sub.Done()

	err := sub.Start(context.Background())
	gt.Equal(t, errors.Is(err, types.ErrInvalidState), true)
}

func TestStateString(t *testing.T) {
	gt.Equal(t, gcp.StateRunning.String(), "RUNNING")
	gt.Equal(t, gcp.StateFailed.String(), "FAILED")
	gt.Equal(t, gcp.State(99).String(), "UNKNOWN")
}
