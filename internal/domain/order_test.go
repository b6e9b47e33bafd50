package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", value, err)
	}
	return parsed
}

func TestOrder_IsLate(t *testing.T) {
	delivered := ts(t, "2024-01-12 10:00:00")
	order := Order{
		EstimatedDeliveryDate: ts(t, "2024-01-10 00:00:00"),
		DeliveredCustomerDate: &delivered,
	}
	assert.True(t, order.IsLate())
}

func TestOrder_IsLate_OnTime(t *testing.T) {
	delivered := ts(t, "2024-01-05 10:00:00")
	order := Order{
		EstimatedDeliveryDate: ts(t, "2024-01-10 00:00:00"),
		DeliveredCustomerDate: &delivered,
	}
	assert.False(t, order.IsLate())
}

func TestOrder_IsLate_Undelivered(t *testing.T) {
	order := Order{
		EstimatedDeliveryDate: ts(t, "2024-01-10 00:00:00"),
	}
	assert.False(t, order.IsLate())
}

func TestOrder_DeliveryDays(t *testing.T) {
	delivered := ts(t, "2024-01-05 10:00:00")
	order := Order{
		PurchaseTimestamp:     ts(t, "2024-01-01 10:00:00"),
		DeliveredCustomerDate: &delivered,
	}

	days, ok := order.DeliveryDays()
	assert.True(t, ok)
	assert.Equal(t, 4, days)
}

func TestOrder_DeliveryDays_Undelivered(t *testing.T) {
	order := Order{PurchaseTimestamp: ts(t, "2024-01-01 10:00:00")}

	days, ok := order.DeliveryDays()
	assert.False(t, ok)
	assert.Equal(t, 0, days)
}

func TestOrder_LateDays(t *testing.T) {
	delivered := ts(t, "2024-01-12 12:00:00")
	order := Order{
		EstimatedDeliveryDate: ts(t, "2024-01-10 00:00:00"),
		DeliveredCustomerDate: &delivered,
	}

	late, ok := order.LateDays()
	assert.True(t, ok)
	assert.InDelta(t, 2.5, late, 1e-9)
}

func TestOrder_LateDays_OnTime(t *testing.T) {
	delivered := ts(t, "2024-01-09 00:00:00")
	order := Order{
		EstimatedDeliveryDate: ts(t, "2024-01-10 00:00:00"),
		DeliveredCustomerDate: &delivered,
	}

	late, ok := order.LateDays()
	assert.False(t, ok)
	assert.Zero(t, late)
}

func TestOrder_StatusConstants(t *testing.T) {
	assert.Equal(t, "delivered", OrderStatusDelivered)
	assert.Equal(t, "shipped", OrderStatusShipped)
	assert.Equal(t, "canceled", OrderStatusCanceled)
	assert.Equal(t, "unavailable", OrderStatusUnavailable)
}
