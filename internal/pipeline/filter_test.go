package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirador/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func sampleSales() []SaleRow {
	return []SaleRow{
		{OrderID: "o1", Score: 4, SellerID: "s1", SellerState: "SP", TotalPrice: 12.50, FreightValue: 2.50},
		{OrderID: "o1", Score: 4, SellerID: "s1", SellerState: "SP", ProductID: "p2", TotalPrice: 25.00, FreightValue: 5.00},
		{OrderID: "o2", Score: 2, SellerID: "s2", SellerState: "RJ", TotalPrice: 37.00, FreightValue: 7.00},
		{OrderID: "o3", Score: 5, SellerID: "s3", SellerState: "SP", TotalPrice: 18.00, FreightValue: 3.00},
	}
}

func TestFilterSales_ByState(t *testing.T) {
	rows := FilterSales(sampleSales(), SalesFilter{States: []string{"SP"}})
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, "SP", r.SellerState)
	}
}

func TestFilterSales_ByScoreRange(t *testing.T) {
	rows := FilterSales(sampleSales(), SalesFilter{
		Score: NumRange{Min: floatPtr(4), Max: floatPtr(5)},
	})
	require.Len(t, rows, 3)
}

func TestFilterSales_CombinesWithAND(t *testing.T) {
	rows := FilterSales(sampleSales(), SalesFilter{
		States:     []string{"SP"},
		TotalPrice: NumRange{Max: floatPtr(20.00)},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, "o1", rows[0].OrderID)
	assert.Equal(t, "o3", rows[1].OrderID)
}

// Filters are pure row-set restrictions: any application order yields the
// same rows.
func TestFilterSales_Commutative(t *testing.T) {
	stateOnly := SalesFilter{States: []string{"SP"}}
	priceOnly := SalesFilter{TotalPrice: NumRange{Max: floatPtr(20.00)}}
	both := SalesFilter{States: []string{"SP"}, TotalPrice: NumRange{Max: floatPtr(20.00)}}

	stateThenPrice := FilterSales(FilterSales(sampleSales(), stateOnly), priceOnly)
	priceThenState := FilterSales(FilterSales(sampleSales(), priceOnly), stateOnly)
	combined := FilterSales(sampleSales(), both)

	assert.Equal(t, combined, stateThenPrice)
	assert.Equal(t, combined, priceThenState)
}

func TestFilterSales_Idempotent(t *testing.T) {
	f := SalesFilter{States: []string{"SP"}, Score: NumRange{Min: floatPtr(4)}}
	once := FilterSales(sampleSales(), f)
	twice := FilterSales(once, f)
	assert.Equal(t, once, twice)
}

func TestFilterSales_EmptyResultIsValid(t *testing.T) {
	rows := FilterSales(sampleSales(), SalesFilter{States: []string{"AC"}})
	assert.Empty(t, rows)

	// Downstream aggregation over the empty set degrades, it never fails.
	assert.Empty(t, AggregateSellers(rows))
	assert.Empty(t, AggregateCategories(rows))
	assert.Empty(t, TopN(AggregateSellers(rows), 10, func(s SellerSummary) float64 { return s.Revenue }, nil, Descending))
}

func TestFilterSales_OrderCountRange(t *testing.T) {
	// s1 has one distinct order over two rows; a min of 2 removes everyone.
	rows := FilterSales(sampleSales(), SalesFilter{
		OrderCount: NumRange{Min: floatPtr(2)},
	})
	assert.Empty(t, rows)

	rows = FilterSales(sampleSales(), SalesFilter{
		OrderCount: NumRange{Min: floatPtr(1), Max: floatPtr(1)},
	})
	assert.Len(t, rows, 4)
}

func TestFilterOrders_DateRange(t *testing.T) {
	rows := []OrderCustomer{
		{
			Order:    domain.Order{OrderID: "o1", PurchaseTimestamp: mustTime(t, "2024-01-15")},
			Customer: &domain.Customer{State: "SP"},
		},
		{
			Order:    domain.Order{OrderID: "o2", PurchaseTimestamp: mustTime(t, "2024-03-15")},
			Customer: &domain.Customer{State: "SP"},
		},
	}

	from := mustTime(t, "2024-01-01")
	to := mustTime(t, "2024-02-01")
	filtered := FilterOrders(rows, DateRange{From: &from, To: &to}, nil)
	require.Len(t, filtered, 1)
	assert.Equal(t, "o1", filtered[0].Order.OrderID)
}

func TestFilterOrders_StateMembership(t *testing.T) {
	rows := []OrderCustomer{
		{Order: domain.Order{OrderID: "o1"}, Customer: &domain.Customer{State: "SP"}},
		{Order: domain.Order{OrderID: "o2"}, Customer: &domain.Customer{State: "RJ"}},
		{Order: domain.Order{OrderID: "o3"}},
	}

	filtered := FilterOrders(rows, DateRange{}, []string{"SP", "MG"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "o1", filtered[0].Order.OrderID)
}

func TestComputeSalesBounds(t *testing.T) {
	b := ComputeSalesBounds(sampleSales())

	assert.True(t, b.TotalPrice.OK)
	assert.InDelta(t, 12.50, b.TotalPrice.Min, 1e-9)
	assert.InDelta(t, 37.00, b.TotalPrice.Max, 1e-9)
	assert.True(t, b.Score.OK)
	assert.InDelta(t, 2, b.Score.Min, 1e-9)
	assert.InDelta(t, 5, b.Score.Max, 1e-9)
	assert.True(t, b.Orders.OK)
	assert.InDelta(t, 1, b.Orders.Min, 1e-9)
	assert.InDelta(t, 1, b.Orders.Max, 1e-9)
}

/// The empty-row-set degeneracy: bounds report no data instead of a
// min > max pair that would crash a slider widget.
func TestComputeSalesBounds_EmptyRows(t *testing.T) {
	b := ComputeSalesBounds(nil)

	assert.False(t, b.TotalPrice.OK)
	assert.False(t, b.Freight.OK)
	assert.False(t, b.Score.OK)
	assert.False(t, b.Orders.OK)
	assert.False(t, b.TotalPrice.Min > b.TotalPrice.Max)
}
