package reviews

import (
	"context"

	"mirador/internal/pipeline"
)

type UseCase interface {
	States(ctx context.Context) (*pipeline.Table, error)
}

type Service interface {
	States(ctx context.Context) ([]pipeline.ReviewStateSummary, error)
}
