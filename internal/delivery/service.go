package delivery

import (
	"context"

	"mirador/internal/dataset"
	"mirador/internal/pipeline"
)

type deliveryService struct {
	store *dataset.Store
}

func NewService(store *dataset.Store) Service {
	return &deliveryService{store: store}
}

// States aggregates the late-delivery metrics per state and ranks them on
// the requested metric. States where the metric is undefined (no delivered
// or no late orders) never enter the ranking.
func (s *deliveryService) States(_ context.Context, req StatesRequest) ([]pipeline.DeliverySummary, error) {
	snap := s.store.Snapshot()
	rows := pipeline.JoinOrdersCustomers(snap.Orders, snap.Customers, pipeline.JoinInner)
	rows = pipeline.FilterOrders(rows, pipeline.DateRange{From: req.From, To: req.To}, nil)
	summaries := pipeline.AggregateDelivery(rows)

	order := pipeline.Descending
	if req.Ascending {
		order = pipeline.Ascending
	}

	key, keyOK := rankKey(req.RankBy)
	return pipeline.TopN(summaries, req.Limit, key, keyOK, order), nil
}

func rankKey(by string) (func(pipeline.DeliverySummary) float64, func(pipeline.DeliverySummary) bool) {
	if by == RankByDeliveryDays {
		return func(s pipeline.DeliverySummary) float64 {
				return *s.EntregaPromDias
			}, func(s pipeline.DeliverySummary) bool {
				return s.EntregaPromDias != nil
			}
	}
	return func(s pipeline.DeliverySummary) float64 {
			return *s.LatePercentage
		}, func(s pipeline.DeliverySummary) bool {
			return s.LatePercentage != nil
		}
}
