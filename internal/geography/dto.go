package geography

import "time"

type TopStatesRequest struct {
	Limit int
	From  *time.Time
	To    *time.Time
}

type CitiesRequest struct {
	// State restricts the city table to one state; empty means all states.
	State string
	From  *time.Time
	To    *time.Time
}
