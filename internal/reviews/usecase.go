package reviews

import (
	"context"

	"mirador/internal/pipeline"
)

type reviewsUseCase struct {
	service Service
}

func NewUseCase(service Service) UseCase {
	return &reviewsUseCase{service: service}
}

func (uc *reviewsUseCase) States(ctx context.Context) (*pipeline.Table, error) {
	summaries, err := uc.service.States(ctx)
	if err != nil {
		return nil, err
	}

	table := pipeline.NewTable(
		"Reviews por estado",
		"estado", "num_reviews", "score_medio",
	).WithAxes("estado", "num_reviews")

	for _, s := range summaries {
		table.Append(s.State, s.NumReviews, s.ScoreMedio)
	}
	return table, nil
}
