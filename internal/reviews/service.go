package reviews

import (
	"context"
	"sort"

	"mirador/internal/dataset"
	"mirador/internal/pipeline"
)

type reviewsService struct {
	store *dataset.Store
}

func NewService(store *dataset.Store) Service {
	return &reviewsService{store: store}
}

// States resolves each review to the customer's state and aggregates
// count plus mean score per state, sorted by state for a stable axis.
func (s *reviewsService) States(_ context.Context) ([]pipeline.ReviewStateSummary, error) {
	snap := s.store.Snapshot()
	rows := pipeline.JoinReviewStates(snap.Reviews, snap.Orders, snap.Customers)
	summaries := pipeline.AggregateReviewStates(rows)

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].State < summaries[j].State
	})
	return summaries, nil
}
