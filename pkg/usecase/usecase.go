package usecase

import "github.com/m-mizutani/psdemo/pkg/domain/interfaces"

type UseCases struct {
	publisher interfaces.Publisher
	buffer    interfaces.Buffer
}

var _ interfaces.UseCases = &UseCases{}

func New(options ...Option) *UseCases {
	uc := &UseCases{}
	for _, option := range options {
		option(uc)
	}

	return uc
}

type Option func(*UseCases)

func WithPublisher(publisher interfaces.Publisher) Option {
	return func(uc *UseCases) {
		uc.publisher = publisher
	}
}

// WithBuffer sets the sink of received records. Without it, received records are only logged.
func WithBuffer(buffer interfaces.Buffer) Option {
	return func(uc *UseCases) {
		uc.buffer = buffer
	}
}
