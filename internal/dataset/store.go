package dataset

import "mirador/internal/domain"

// Snapshot is the full set of entity tables loaded from disk. It is
// read-only after load: the pipeline derives new tables from it and never
// mutates it, so independent view modules may use it concurrently.
type Snapshot struct {
	Orders    []domain.Order
	Customers []domain.Customer
	Items     []domain.OrderItem
	Reviews   []domain.Review
	Sellers   []domain.Seller
	Products  []domain.Product
}

// Store hands the loaded snapshot to the view modules.
type Store struct {
	snap Snapshot
}

func NewStore(snap Snapshot) *Store {
	return &Store{snap: snap}
}

func (s *Store) Snapshot() Snapshot {
	return s.snap
}
