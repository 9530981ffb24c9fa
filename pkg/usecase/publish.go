package usecase

import (
	"context"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/utils/ctxutil"
)

func (x *UseCases) Publish(ctx context.Context, record *model.Record) error {
	if record == nil {
		return goerr.Wrap(types.ErrInvalidInput, "record is required")
	}
	if x.publisher == nil {
		return goerr.Wrap(types.ErrInvalidConfig, "publisher is not configured")
	}

	if err := x.publisher.Publish(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to publish record").With("id", record.ID)
	}

	ctxutil.Logger(ctx).Info("record published", "id", record.ID)
	return nil
}
