package domain

type Customer struct {
	CustomerID string
	// UniqueID identifies the person; one person may appear under several
	// CustomerID values across orders.
	UniqueID string
	City     string
	State    string
}
