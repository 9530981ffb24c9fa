package gcp

import (
	"context"

	"cloud.google.com/go/pubsub"
)

type Outcome = outcome

const (
	OutcomeDone  = outcomeDone
	OutcomeDrop  = outcomeDrop
	OutcomeRetry = outcomeRetry
)

func (x *Subscriber) Process(ctx context.Context, msg *pubsub.Message) Outcome {
	return x.process(ctx, msg)
}
