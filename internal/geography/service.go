package geography

import (
	"context"

	"mirador/internal/dataset"
	"mirador/internal/pipeline"
)

type geographyService struct {
	store *dataset.Store
}

func NewService(store *dataset.Store) Service {
	return &geographyService{store: store}
}

func (s *geographyService) TopStates(_ context.Context, limit int, dates pipeline.DateRange) ([]pipeline.StateSummary, error) {
	rows := s.orderRows(dates, nil)
	summaries := pipeline.AggregateStates(rows)
	return pipeline.TopN(summaries, limit, func(s pipeline.StateSummary) float64 {
		return float64(s.NumClientes)
	}, nil, pipeline.Descending), nil
}

func (s *geographyService) Cities(_ context.Context, state string, dates pipeline.DateRange) ([]pipeline.CitySummary, error) {
	var states []string
	if state != "" {
		states = []string{state}
	}
	rows := s.orderRows(dates, states)
	return pipeline.AggregateCities(rows), nil
}

func (s *geographyService) orderRows(dates pipeline.DateRange, states []string) []pipeline.OrderCustomer {
	snap := s.store.Snapshot()
	rows := pipeline.JoinOrdersCustomers(snap.Orders, snap.Customers, pipeline.JoinInner)
	return pipeline.FilterOrders(rows, dates, states)
}
