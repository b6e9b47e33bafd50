package delivery

import "time"

// Rank keys for the per-state delivery table.
const (
	RankByLatePercentage = "late_percentage"
	RankByDeliveryDays   = "entrega_prom_dias"
)

type StatesRequest struct {
	Limit int
	// RankBy selects the metric the table is ordered on.
	RankBy string
	// Ascending orders smallest-first, the "fastest delivery" view.
	Ascending bool
	From      *time.Time
	To        *time.Time
}
