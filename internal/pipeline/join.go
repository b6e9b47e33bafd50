package pipeline

import "mirador/internal/domain"

// JoinMode selects how a join treats a key with no match on the other side.
type JoinMode int

const (
	// JoinInner drops the row when the key is missing on either side.
	JoinInner JoinMode = iota
	// JoinLeft keeps the left row and leaves the right-side columns absent.
	JoinLeft
)

// OrderCustomer is an order row widened with its customer. Customer is nil
// only under left-join semantics when the customer_id had no match.
type OrderCustomer struct {
	Order    domain.Order
	Customer *domain.Customer
}

// ReviewState is a review widened through orders to the customer's state,
// the review → orders → customers chain. State is empty when either hop
// missed under left-join semantics.
type ReviewState struct {
	ReviewID string
	Score    int
	State    string
}

// SaleRow is one review fanned out across the order's items and widened
// with seller and product columns. It is the row shape behind every
// seller/category view.
type SaleRow struct {
	OrderID      string
	Score        int
	ProductID    string
	SellerID     string
	Price        float64
	FreightValue float64
	TotalPrice   float64
	SellerState  string
	SellerCity   string
	Category     string
}

// JoinOrdersCustomers joins orders to customers on customer_id. Row order
// follows the left (orders) side so results are reproducible.
func JoinOrdersCustomers(orders []domain.Order, customers []domain.Customer, mode JoinMode) []OrderCustomer {
	byID := make(map[string]domain.Customer, len(customers))
	for _, c := range customers {
		byID[c.CustomerID] = c
	}

	out := make([]OrderCustomer, 0, len(orders))
	for _, o := range orders {
		c, ok := byID[o.CustomerID]
		if !ok {
			if mode == JoinInner {
				continue
			}
			out = append(out, OrderCustomer{Order: o})
			continue
		}
		customer := c
		out = append(out, OrderCustomer{Order: o, Customer: &customer})
	}
	return out
}

// JoinReviewStates resolves each review to its customer's state via the
// order, left-join semantics on both hops.
func JoinReviewStates(reviews []domain.Review, orders []domain.Order, customers []domain.Customer) []ReviewState {
	orderByID := make(map[string]domain.Order, len(orders))
	for _, o := range orders {
		orderByID[o.OrderID] = o
	}
	customerByID := make(map[string]domain.Customer, len(customers))
	for _, c := range customers {
		customerByID[c.CustomerID] = c
	}

	out := make([]ReviewState, 0, len(reviews))
	for _, r := range reviews {
		row := ReviewState{ReviewID: r.ReviewID, Score: r.Score}
		if o, ok := orderByID[r.OrderID]; ok {
			if c, ok := customerByID[o.CustomerID]; ok {
				row.State = c.State
			}
		}
		out = append(out, row)
	}
	return out
}

// JoinSales builds the review → order items → sellers → products chain.
// Each review fans out once per matching item; seller and product columns
// are left-joined. Full-row duplicates introduced by the repeated joins are
// removed once at the end of the chain, not after each intermediate join.
func JoinSales(reviews []domain.Review, items []domain.OrderItem, sellers []domain.Seller, products []domain.Product) []SaleRow {
	itemsByOrder := make(map[string][]domain.OrderItem, len(items))
	for _, it := range items {
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], it)
	}
	sellerByID := make(map[string]domain.Seller, len(sellers))
	for _, s := range sellers {
		sellerByID[s.SellerID] = s
	}
	productByID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		productByID[p.ProductID] = p
	}

	var out []SaleRow
	for _, r := range reviews {
		matched := itemsByOrder[r.OrderID]
		if len(matched) == 0 {
			out = append(out, SaleRow{OrderID: r.OrderID, Score: r.Score})
			continue
		}
		for _, it := range matched {
			row := SaleRow{
				OrderID:      it.OrderID,
				Score:        r.Score,
				ProductID:    it.ProductID,
				SellerID:     it.SellerID,
				Price:        it.Price,
				FreightValue: it.FreightValue,
				TotalPrice:   it.TotalPrice(),
			}
			if s, ok := sellerByID[it.SellerID]; ok {
				row.SellerState = s.State
				row.SellerCity = s.City
			}
			if p, ok := productByID[it.ProductID]; ok {
				row.Category = p.DisplayCategory()
			}
			out = append(out, row)
		}
	}
	return DedupSales(out)
}

// DedupSales removes full-row duplicates, keeping the first occurrence so
// row order stays stable.
func DedupSales(rows []SaleRow) []SaleRow {
	seen := make(map[SaleRow]struct{}, len(rows))
	out := make([]SaleRow, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row]; ok {
			continue
		}
		seen[row] = struct{}{}
		out = append(out, row)
	}
	return out
}
