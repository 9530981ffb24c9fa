package gcp

import (
	"cloud.google.com/go/pubsub"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
)

// Encode wraps the JSON payload of record into a Pub/Sub envelope.
func Encode(record *model.Record) (*pubsub.Message, error) {
	if record == nil {
		return nil, goerr.Wrap(types.ErrEncodeRecord, "record is nil")
	}

	payload, err := record.Payload()
	if err != nil {
		return nil, err
	}

	return &pubsub.Message{Data: payload}, nil
}

// Decode extracts the record carried by msg.
func Decode(msg *pubsub.Message) (*model.Record, error) {
	if msg == nil {
		return nil, goerr.Wrap(types.ErrDecodeRecord, "message is nil")
	}

	record, err := model.ParseRecord(msg.Data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode message").With("message_id", msg.ID)
	}
	return record, nil
}
