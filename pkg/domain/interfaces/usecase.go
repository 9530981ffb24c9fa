package interfaces

import (
	"context"

	"github.com/m-mizutani/psdemo/pkg/domain/model"
)

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCases

type UseCases interface {
	Publish(ctx context.Context, record *model.Record) error
	HandleRecord(ctx context.Context, record *model.Record) error
	Records(ctx context.Context) []model.Record
	ClearRecords(ctx context.Context)
}
