package sellers

import (
	"context"

	"mirador/internal/dataset"
	"mirador/internal/pipeline"
)

type sellersService struct {
	store *dataset.Store
}

func NewService(store *dataset.Store) Service {
	return &sellersService{store: store}
}

// rows builds the review → items → sellers → products chain, deduplicated
// once after the full chain, then applies the sidebar filters. An empty
// result is valid and flows through every view as an empty table.
func (s *sellersService) rows(filter pipeline.SalesFilter) []pipeline.SaleRow {
	snap := s.store.Snapshot()
	chain := pipeline.JoinSales(snap.Reviews, snap.Items, snap.Sellers, snap.Products)
	return pipeline.FilterSales(chain, filter)
}

func (s *sellersService) TopSellers(_ context.Context, filter pipeline.SalesFilter, limit int) ([]pipeline.SellerSummary, error) {
	summaries := pipeline.AggregateSellers(s.rows(filter))
	return pipeline.TopN(summaries, limit, func(s pipeline.SellerSummary) float64 {
		return *s.ScoreMedio
	}, func(s pipeline.SellerSummary) bool {
		return s.ScoreMedio != nil
	}, pipeline.Descending), nil
}

func (s *sellersService) Revenue(_ context.Context, filter pipeline.SalesFilter, limit int) ([]pipeline.SellerSummary, error) {
	summaries := pipeline.AggregateSellers(s.rows(filter))
	return pipeline.TopN(summaries, limit, func(s pipeline.SellerSummary) float64 {
		return s.Revenue
	}, nil, pipeline.Descending), nil
}

func (s *sellersService) Categories(_ context.Context, filter pipeline.SalesFilter, limit int) ([]pipeline.CategorySummary, error) {
	summaries := pipeline.AggregateCategories(s.rows(filter))
	return pipeline.TopN(summaries, limit, func(c pipeline.CategorySummary) float64 {
		return float64(c.NumPurchases)
	}, nil, pipeline.Descending), nil
}

func (s *sellersService) Freight(_ context.Context, filter pipeline.SalesFilter, limit int) ([]pipeline.CategorySummary, error) {
	summaries := pipeline.AggregateCategories(s.rows(filter))
	return pipeline.TopN(summaries, limit, func(c pipeline.CategorySummary) float64 {
		return *c.AvgFreight
	}, func(c pipeline.CategorySummary) bool {
		return c.AvgFreight != nil
	}, pipeline.Descending), nil
}

func (s *sellersService) Scores(_ context.Context, filter pipeline.SalesFilter) ([]pipeline.ScoreCount, error) {
	return pipeline.ScoreDistribution(s.rows(filter)), nil
}

// Bounds derives the slider widget ranges from the rows surviving the
// state filter alone, so a state selection that matches nothing disables
// the dependent sliders instead of handing them min > max.
func (s *sellersService) Bounds(_ context.Context, states []string) (pipeline.SalesBounds, error) {
	rows := s.rows(pipeline.SalesFilter{States: states})
	return pipeline.ComputeSalesBounds(rows), nil
}
