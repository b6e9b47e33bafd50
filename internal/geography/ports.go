package geography

import (
	"context"

	"mirador/internal/pipeline"
)

type UseCase interface {
	TopStates(ctx context.Context, req TopStatesRequest) (*pipeline.Table, error)
	Cities(ctx context.Context, req CitiesRequest) (*pipeline.Table, error)
}

type Service interface {
	TopStates(ctx context.Context, limit int, dates pipeline.DateRange) ([]pipeline.StateSummary, error)
	Cities(ctx context.Context, state string, dates pipeline.DateRange) ([]pipeline.CitySummary, error)
}
