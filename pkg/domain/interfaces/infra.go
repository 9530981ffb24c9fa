package interfaces

import (
	"context"

	"github.com/m-mizutani/opac"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
)

//go:generate moq -out ../mock/infra.go -pkg mock . Publisher Buffer Policy

type Publisher interface {
	Publish(ctx context.Context, record *model.Record) error
}

type Buffer interface {
	Append(record model.Record)
	Records() []model.Record
	Clear()
}

type Policy interface {
	Query(ctx context.Context, query string, input, output any, options ...opac.QueryOption) error
}
