package pipeline

import "math"

// Round2 rounds presentation values to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StateSummary aggregates orders joined to customers for one state.
// Ratio metrics are nil when their denominator is zero; undefined values
// never rank and render as null.
type StateSummary struct {
	State               string
	NumClientes         int
	NumPedidos          int
	PorcentajePedidos   float64
	RatioPedidosCliente *float64
	EntregaPromDias     *float64
}

// CitySummary is the state+city grouping of the same metrics.
type CitySummary struct {
	State               string
	City                string
	NumClientes         int
	NumPedidos          int
	RatioPedidosCliente *float64
	EntregaPromDias     *float64
}

// ReviewStateSummary counts reviews and averages their score per state.
type ReviewStateSummary struct {
	State      string
	NumReviews int
	ScoreMedio float64
}

// DeliverySummary carries the late-delivery metrics for one state.
type DeliverySummary struct {
	State           string
	TotalOrders     int
	LateOrders      int
	LatePercentage  *float64
	AvgLateDays     *float64
	EntregaPromDias *float64
}

// SellerSummary aggregates the sales chain per seller.
type SellerSummary struct {
	SellerID   string
	State      string
	NumOrders  int
	ScoreMedio *float64
	Revenue    float64
}

// CategorySummary aggregates the sales chain per product category.
type CategorySummary struct {
	Category     string
	NumPurchases int
	AvgFreight   *float64
}

// ScoreCount is one bucket of the review score distribution.
type ScoreCount struct {
	Score int
	Count int
}

type stateAccum struct {
	clientes     map[string]struct{}
	pedidos      map[string]struct{}
	deliveryDays int
	delivered    int
	lateOrders   int
	lateDays     float64
}

// AggregateStates groups order/customer rows by customer state.
//
// num_clientes counts distinct customer_unique_id: the person-level
// identifier, since one person holds several customer_ids across orders.
// porcentaje_pedidos is each group's share of all distinct orders in the
// input, so the column sums to 100 up to rounding. Rows without a customer
// match (left-join misses) are not grouped, matching the source's behavior
// of dropping null group keys.
func AggregateStates(rows []OrderCustomer) []StateSummary {
	keys, accums, totalOrders := accumulateStates(rows, func(r OrderCustomer) string {
		return r.Customer.State
	})

	out := make([]StateSummary, 0, len(keys))
	for _, state := range keys {
		a := accums[state]
		s := StateSummary{
			State:       state,
			NumClientes: len(a.clientes),
			NumPedidos:  len(a.pedidos),
		}
		if totalOrders > 0 {
			s.PorcentajePedidos = Round2(100 * float64(len(a.pedidos)) / float64(totalOrders))
		}
		s.RatioPedidosCliente = ratio(float64(len(a.pedidos)), float64(len(a.clientes)))
		s.EntregaPromDias = meanDays(a.deliveryDays, a.delivered)
		out = append(out, s)
	}
	return out
}

// AggregateCities groups by state+city, same metric set minus the global
// order share.
func AggregateCities(rows []OrderCustomer) []CitySummary {
	type cityKey struct{ state, city string }
	var keys []cityKey
	accums := map[cityKey]*stateAccum{}

	for _, r := range rows {
		if r.Customer == nil {
			continue
		}
		k := cityKey{state: r.Customer.State, city: r.Customer.City}
		a, ok := accums[k]
		if !ok {
			a = newStateAccum()
			accums[k] = a
			keys = append(keys, k)
		}
		a.add(r)
	}

	out := make([]CitySummary, 0, len(keys))
	for _, k := range keys {
		a := accums[k]
		out = append(out, CitySummary{
			State:               k.state,
			City:                k.city,
			NumClientes:         len(a.clientes),
			NumPedidos:          len(a.pedidos),
			RatioPedidosCliente: ratio(float64(len(a.pedidos)), float64(len(a.clientes))),
			EntregaPromDias:     meanDays(a.deliveryDays, a.delivered),
		})
	}
	return out
}

// AggregateReviewStates counts reviews and averages review_score per state,
// score rounded to two decimals. Reviews that never resolved to a state are
// dropped from the grouping.
func AggregateReviewStates(rows []ReviewState) []ReviewStateSummary {
	type accum struct {
		count int
		sum   int
	}
	var keys []string
	accums := map[string]*accum{}

	for _, r := range rows {
		if r.State == "" {
			continue
		}
		a, ok := accums[r.State]
		if !ok {
			a = &accum{}
			accums[r.State] = a
			keys = append(keys, r.State)
		}
		a.count++
		a.sum += r.Score
	}

	out := make([]ReviewStateSummary, 0, len(keys))
	for _, state := range keys {
		a := accums[state]
		out = append(out, ReviewStateSummary{
			State:      state,
			NumReviews: a.count,
			ScoreMedio: Round2(float64(a.sum) / float64(a.count)),
		})
	}
	return out
}

// AggregateDelivery computes per-state late-delivery metrics. An order is
// late only when it has a customer delivery timestamp exceeding the
// estimate; orders missing either side are excluded from the late flag and
// from avg_late_days, not counted as on time zeros.
func AggregateDelivery(rows []OrderCustomer) []DeliverySummary {
	keys, accums, _ := accumulateStates(rows, func(r OrderCustomer) string {
		return r.Customer.State
	})

	out := make([]DeliverySummary, 0, len(keys))
	for _, state := range keys {
		a := accums[state]
		s := DeliverySummary{
			State:       state,
			TotalOrders: len(a.pedidos),
			LateOrders:  a.lateOrders,
		}
		if len(a.pedidos) > 0 {
			p := Round2(100 * float64(a.lateOrders) / float64(len(a.pedidos)))
			s.LatePercentage = &p
		}
		if a.lateOrders > 0 {
			d := Round2(a.lateDays / float64(a.lateOrders))
			s.AvgLateDays = &d
		}
		s.EntregaPromDias = meanDays(a.deliveryDays, a.delivered)
		out = append(out, s)
	}
	return out
}

// AggregateSellers groups the sales chain per seller: distinct order count,
// mean review score, and revenue as the sum of total_price. Rows whose
// seller never matched are dropped from the grouping.
func AggregateSellers(rows []SaleRow) []SellerSummary {
	type accum struct {
		state    string
		orders   map[string]struct{}
		scoreSum int
		scoreN   int
		revenue  float64
	}
	var keys []string
	accums := map[string]*accum{}

	for _, r := range rows {
		if r.SellerID == "" {
			continue
		}
		a, ok := accums[r.SellerID]
		if !ok {
			a = &accum{state: r.SellerState, orders: map[string]struct{}{}}
			accums[r.SellerID] = a
			keys = append(keys, r.SellerID)
		}
		a.orders[r.OrderID] = struct{}{}
		a.scoreSum += r.Score
		a.scoreN++
		a.revenue += r.TotalPrice
	}

	out := make([]SellerSummary, 0, len(keys))
	for _, id := range keys {
		a := accums[id]
		s := SellerSummary{
			SellerID:  id,
			State:     a.state,
			NumOrders: len(a.orders),
			Revenue:   Round2(a.revenue),
		}
		if a.scoreN > 0 {
			m := Round2(float64(a.scoreSum) / float64(a.scoreN))
			s.ScoreMedio = &m
		}
		out = append(out, s)
	}
	return out
}

// AggregateCategories groups the sales chain per product category:
// purchase count and mean freight value.
func AggregateCategories(rows []SaleRow) []CategorySummary {
	type accum struct {
		count      int
		freightSum float64
	}
	var keys []string
	accums := map[string]*accum{}

	for _, r := range rows {
		if r.Category == "" {
			continue
		}
		a, ok := accums[r.Category]
		if !ok {
			a = &accum{}
			accums[r.Category] = a
			keys = append(keys, r.Category)
		}
		a.count++
		a.freightSum += r.FreightValue
	}

	out := make([]CategorySummary, 0, len(keys))
	for _, cat := range keys {
		a := accums[cat]
		s := CategorySummary{Category: cat, NumPurchases: a.count}
		if a.count > 0 {
			f := Round2(a.freightSum / float64(a.count))
			s.AvgFreight = &f
		}
		out = append(out, s)
	}
	return out
}

// ScoreDistribution buckets sales rows by review score, 1 through 5.
func ScoreDistribution(rows []SaleRow) []ScoreCount {
	counts := map[int]int{}
	for _, r := range rows {
		counts[r.Score]++
	}
	out := make([]ScoreCount, 0, 5)
	for score := 1; score <= 5; score++ {
		if c, ok := counts[score]; ok {
			out = append(out, ScoreCount{Score: score, Count: c})
		}
	}
	return out
}

func newStateAccum() *stateAccum {
	return &stateAccum{
		clientes: map[string]struct{}{},
		pedidos:  map[string]struct{}{},
	}
}

func (a *stateAccum) add(r OrderCustomer) {
	a.clientes[r.Customer.UniqueID] = struct{}{}
	a.pedidos[r.Order.OrderID] = struct{}{}
	if days, ok := r.Order.DeliveryDays(); ok {
		a.deliveryDays += days
		a.delivered++
	}
	if r.Order.IsLate() {
		a.lateOrders++
	}
	if late, ok := r.Order.LateDays(); ok {
		a.lateDays += late
	}
}

func accumulateStates(rows []OrderCustomer, key func(OrderCustomer) string) ([]string, map[string]*stateAccum, int) {
	var keys []string
	accums := map[string]*stateAccum{}
	totalOrders := map[string]struct{}{}

	for _, r := range rows {
		if r.Customer == nil {
			continue
		}
		totalOrders[r.Order.OrderID] = struct{}{}
		k := key(r)
		a, ok := accums[k]
		if !ok {
			a = newStateAccum()
			accums[k] = a
			keys = append(keys, k)
		}
		a.add(r)
	}
	return keys, accums, len(totalOrders)
}

func ratio(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	r := Round2(num / den)
	return &r
}

func meanDays(sum, n int) *float64 {
	if n == 0 {
		return nil
	}
	m := Round2(float64(sum) / float64(n))
	return &m
}
