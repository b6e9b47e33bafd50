package delivery

import (
	"context"

	"mirador/internal/pipeline"
)

type UseCase interface {
	States(ctx context.Context, req StatesRequest) (*pipeline.Table, error)
}

type Service interface {
	States(ctx context.Context, req StatesRequest) ([]pipeline.DeliverySummary, error)
}
