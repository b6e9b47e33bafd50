package sellers

import (
	"context"

	"mirador/internal/pipeline"
)

type UseCase interface {
	TopSellers(ctx context.Context, req ViewRequest) (*pipeline.Table, error)
	Revenue(ctx context.Context, req ViewRequest) (*pipeline.Table, error)
	Categories(ctx context.Context, req ViewRequest) (*pipeline.Table, error)
	Freight(ctx context.Context, req ViewRequest) (*pipeline.Table, error)
	Scores(ctx context.Context, req ViewRequest) (*pipeline.Table, error)
	Bounds(ctx context.Context, states []string) (pipeline.SalesBounds, error)
}

type Service interface {
	TopSellers(ctx context.Context, filter pipeline.SalesFilter, limit int) ([]pipeline.SellerSummary, error)
	Revenue(ctx context.Context, filter pipeline.SalesFilter, limit int) ([]pipeline.SellerSummary, error)
	Categories(ctx context.Context, filter pipeline.SalesFilter, limit int) ([]pipeline.CategorySummary, error)
	Freight(ctx context.Context, filter pipeline.SalesFilter, limit int) ([]pipeline.CategorySummary, error)
	Scores(ctx context.Context, filter pipeline.SalesFilter) ([]pipeline.ScoreCount, error)
	Bounds(ctx context.Context, states []string) (pipeline.SalesBounds, error)
}
