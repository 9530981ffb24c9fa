package usecase

import (
	"context"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/utils/ctxutil"
)

// HandleRecord stores a record delivered by the subscriber.
func (x *UseCases) HandleRecord(ctx context.Context, record *model.Record) error {
	if record == nil {
		return goerr.Wrap(types.ErrInvalidInput, "record is required")
	}

	ctxutil.Logger(ctx).Info("record received", "id", record.ID, "message", record.Message)
	if x.buffer != nil {
		x.buffer.Append(*record)
	}
	return nil
}

func (x *UseCases) Records(ctx context.Context) []model.Record {
	if x.buffer == nil {
		return []model.Record{}
	}
	return x.buffer.Records()
}

func (x *UseCases) ClearRecords(ctx context.Context) {
	if x.buffer == nil {
		return
	}
	x.buffer.Clear()
	ctxutil.Logger(ctx).Debug("received records cleared")
}
