package domain

type Review struct {
	ReviewID string
	OrderID  string
	Score    int
}

const (
	ReviewScoreMin = 1
	ReviewScoreMax = 5
)
