package pipeline

import (
	"fmt"
	"strings"
	"time"

	"mirador/internal/domain"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// ParseTimestamp converts a raw CSV value into a time. An unparseable
// non-empty value is an error so the whole column conversion fails instead
// of silently dropping rows.
func ParseTimestamp(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if t, err := time.Parse(timestampLayout, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}

// ParseNullableTimestamp is ParseTimestamp for columns where an empty value
// means absent rather than invalid.
func ParseNullableTimestamp(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := ParseTimestamp(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CoerceString canonicalizes a text column value. Numeric-looking values
// stay strings; identifiers are never reinterpreted as numbers.
func CoerceString(value string) string {
	return strings.TrimSpace(value)
}

// ImputeOrderDates fills missing order timestamps with the dataset's
// standing assumptions, applied once and in order:
//
//  1. a missing approved_at means approval was immediate, so it takes the
//     purchase timestamp;
//  2. a missing delivered_carrier_date means dispatch happened the day
//     after approval, so it takes approved_at + 24h.
//
// Rule 2 runs after rule 1 on the same record, so it always sees a
// non-nil approved_at. The input slice is not mutated.
func ImputeOrderDates(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, len(orders))
	for i, o := range orders {
		if o.ApprovedAt == nil {
			approved := o.PurchaseTimestamp
			o.ApprovedAt = &approved
		}
		if o.DeliveredCarrierDate == nil {
			carrier := o.ApprovedAt.Add(24 * time.Hour)
			o.DeliveredCarrierDate = &carrier
		}
		out[i] = o
	}
	return out
}
