package csvstore

import (
	"fmt"
	"strconv"

	"mirador/internal/domain"
)

func parseFloat(value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable number %q", value)
	}
	return v, nil
}

func parseScore(value string) (int, error) {
	score, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("unparseable review score %q", value)
	}
	if score < domain.ReviewScoreMin || score > domain.ReviewScoreMax {
		return 0, fmt.Errorf("review score %d out of range", score)
	}
	return score, nil
}
