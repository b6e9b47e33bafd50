package domain

import "time"

type Order struct {
	OrderID               string
	CustomerID            string
	Status                string
	PurchaseTimestamp     time.Time
	ApprovedAt            *time.Time
	DeliveredCarrierDate  *time.Time
	DeliveredCustomerDate *time.Time
	EstimatedDeliveryDate time.Time
}

const (
	OrderStatusDelivered   = "delivered"
	OrderStatusShipped     = "shipped"
	OrderStatusCanceled    = "canceled"
	OrderStatusUnavailable = "unavailable"
)

// IsLate reports whether the order reached the customer after its estimated
// delivery date. Orders without a customer delivery timestamp are never late.
func (o Order) IsLate() bool {
	if o.DeliveredCustomerDate == nil {
		return false
	}
	return o.DeliveredCustomerDate.After(o.EstimatedDeliveryDate)
}

// DeliveryDays returns the purchase-to-delivery span in whole days.
// The second result is false when the order was never delivered.
func (o Order) DeliveryDays() (int, bool) {
	if o.DeliveredCustomerDate == nil {
		return 0, false
	}
	return int(o.DeliveredCustomerDate.Sub(o.PurchaseTimestamp).Hours() / 24), true
}

// LateDays returns how many days past the estimate the delivery arrived.
// Zero and false for on-time or undelivered orders.
func (o Order) LateDays() (float64, bool) {
	if !o.IsLate() {
		return 0, false
	}
	return o.DeliveredCustomerDate.Sub(o.EstimatedDeliveryDate).Hours() / 24, true
}
