package pipeline

import "time"

// DateRange restricts rows to a [From, To] purchase window. Nil bounds are
// open ends.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// NumRange is an inclusive numeric range test. Nil bounds are open ends.
type NumRange struct {
	Min *float64
	Max *float64
}

func (r NumRange) contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// SalesFilter is the sidebar filter set over the sales chain. All
// predicates are combined with AND; each is a pure row-set restriction, so
// applying them in any order yields the same rows.
type SalesFilter struct {
	States     []string
	Score      NumRange
	TotalPrice NumRange
	Freight    NumRange
	// OrderCount keeps only sellers whose distinct order count over the
	// already-restricted rows falls inside the range.
	OrderCount NumRange
}

// FilterOrders restricts order/customer rows by purchase date and customer
// state. An empty states set means no state restriction.
func FilterOrders(rows []OrderCustomer, dates DateRange, states []string) []OrderCustomer {
	allowed := stateSet(states)
	out := make([]OrderCustomer, 0, len(rows))
	for _, r := range rows {
		if !dates.contains(r.Order.PurchaseTimestamp) {
			continue
		}
		if allowed != nil {
			if r.Customer == nil {
				continue
			}
			if _, ok := allowed[r.Customer.State]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// FilterSales applies the full sidebar filter set. Row predicates run
// first; the per-seller order-count restriction runs over the surviving
// rows, mirroring the dashboard's widget chain. An empty result is a valid
// result, never an error.
func FilterSales(rows []SaleRow, f SalesFilter) []SaleRow {
	allowed := stateSet(f.States)
	out := make([]SaleRow, 0, len(rows))
	for _, r := range rows {
		if allowed != nil {
			if _, ok := allowed[r.SellerState]; !ok {
				continue
			}
		}
		if !f.Score.contains(float64(r.Score)) {
			continue
		}
		if !f.TotalPrice.contains(r.TotalPrice) {
			continue
		}
		if !f.Freight.contains(r.FreightValue) {
			continue
		}
		out = append(out, r)
	}

	if f.OrderCount.Min == nil && f.OrderCount.Max == nil {
		return out
	}
	return filterByOrderCount(out, f.OrderCount)
}

func filterByOrderCount(rows []SaleRow, r NumRange) []SaleRow {
	orders := distinctOrdersBySeller(rows)
	out := make([]SaleRow, 0, len(rows))
	for _, row := range rows {
		if row.SellerID == "" {
			continue
		}
		if !r.contains(float64(len(orders[row.SellerID]))) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func stateSet(states []string) map[string]struct{} {
	if len(states) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

// Bounds is a widget range derived from the data. OK is false when the row
// set was empty and the bound is undefined; the dependent filter widget is
// then disabled instead of being handed min > max.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	OK  bool    `json:"ok"`
}

// SalesBounds derives the sidebar widget bounds from a row set.
type SalesBounds struct {
	TotalPrice Bounds `json:"totalPrice"`
	Freight    Bounds `json:"freight"`
	Score      Bounds `json:"score"`
	Orders     Bounds `json:"orders"`
}

// ComputeSalesBounds returns min/max per filterable column. Every bound of
// an empty row set reports OK=false. Rows without an item match carry no
// monetary columns, so only their score contributes.
func ComputeSalesBounds(rows []SaleRow) SalesBounds {
	var b SalesBounds
	for _, r := range rows {
		if r.SellerID != "" {
			b.TotalPrice = b.TotalPrice.extend(r.TotalPrice)
			b.Freight = b.Freight.extend(r.FreightValue)
		}
		b.Score = b.Score.extend(float64(r.Score))
	}
	for sellerID, set := range distinctOrdersBySeller(rows) {
		if sellerID == "" {
			continue
		}
		b.Orders = b.Orders.extend(float64(len(set)))
	}
	return b
}

func (b Bounds) extend(v float64) Bounds {
	if !b.OK {
		return Bounds{Min: v, Max: v, OK: true}
	}
	if v < b.Min {
		b.Min = v
	}
	if v > b.Max {
		b.Max = v
	}
	return b
}

func distinctOrdersBySeller(rows []SaleRow) map[string]map[string]struct{} {
	orders := map[string]map[string]struct{}{}
	for _, row := range rows {
		set, ok := orders[row.SellerID]
		if !ok {
			set = map[string]struct{}{}
			orders[row.SellerID] = set
		}
		set[row.OrderID] = struct{}{}
	}
	return orders
}
