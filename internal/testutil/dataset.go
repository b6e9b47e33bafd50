package testutil

import (
	"testing"
	"time"

	"mirador/internal/dataset"
	"mirador/internal/domain"
)

// MustTime parses a fixture timestamp, accepting dates and full timestamps.
func MustTime(t *testing.T, value string) time.Time {
	t.Helper()
	if ts, err := time.Parse("2006-01-02 15:04:05", value); err == nil {
		return ts
	}
	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad fixture timestamp %q: %v", value, err)
	}
	return ts
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

// NewSnapshot builds a small consistent dataset shared by the module tests:
//
//   - person u1 holds two customer ids (c1, c2) in SP, person u2 is in RJ,
//     person u3 in MG;
//   - o1 delivered on time, o2 delivered five days late, o3 delivered on
//     time, o4 never delivered;
//   - sellers s1/s3 in SP, s2 in RJ; order o4 has a review but no items.
func NewSnapshot(t *testing.T) dataset.Snapshot {
	t.Helper()

	orders := []domain.Order{
		order(t, "o1", "c1", "2024-01-01 10:00:00", "2024-01-05 10:00:00", "2024-01-10"),
		order(t, "o2", "c2", "2024-02-01 09:00:00", "2024-02-15 09:00:00", "2024-02-10"),
		order(t, "o3", "c3", "2024-03-01 12:00:00", "2024-03-04 12:00:00", "2024-03-09"),
		{
			OrderID:               "o4",
			CustomerID:            "c4",
			Status:                domain.OrderStatusShipped,
			PurchaseTimestamp:     MustTime(t, "2024-04-01 08:00:00"),
			ApprovedAt:            TimePtr(MustTime(t, "2024-04-01 08:00:00")),
			DeliveredCarrierDate:  TimePtr(MustTime(t, "2024-04-02 08:00:00")),
			EstimatedDeliveryDate: MustTime(t, "2024-04-15"),
		},
	}

	return dataset.Snapshot{
		Orders: orders,
		Customers: []domain.Customer{
			{CustomerID: "c1", UniqueID: "u1", City: "sao paulo", State: "SP"},
			{CustomerID: "c2", UniqueID: "u1", City: "campinas", State: "SP"},
			{CustomerID: "c3", UniqueID: "u2", City: "rio de janeiro", State: "RJ"},
			{CustomerID: "c4", UniqueID: "u3", City: "belo horizonte", State: "MG"},
		},
		Items: []domain.OrderItem{
			{OrderID: "o1", ProductID: "p1", SellerID: "s1", Price: 10.00, FreightValue: 2.50},
			{OrderID: "o1", ProductID: "p2", SellerID: "s1", Price: 20.00, FreightValue: 5.00},
			{OrderID: "o2", ProductID: "p1", SellerID: "s2", Price: 30.00, FreightValue: 7.00},
			{OrderID: "o3", ProductID: "p3", SellerID: "s3", Price: 15.00, FreightValue: 3.00},
		},
		Reviews: []domain.Review{
			{ReviewID: "r1", OrderID: "o1", Score: 4},
			{ReviewID: "r2", OrderID: "o2", Score: 2},
			{ReviewID: "r3", OrderID: "o3", Score: 5},
			{ReviewID: "r4", OrderID: "o4", Score: 1},
		},
		Sellers: []domain.Seller{
			{SellerID: "s1", City: "sao paulo", State: "SP"},
			{SellerID: "s2", City: "rio de janeiro", State: "RJ"},
			{SellerID: "s3", City: "campinas", State: "SP"},
		},
		Products: []domain.Product{
			{ProductID: "p1", CategoryName: "eletronicos", Category: "electronics"},
			{ProductID: "p2", CategoryName: "moveis", Category: "furniture"},
			{ProductID: "p3", CategoryName: "brinquedos", Category: "toys"},
		},
	}
}

func order(t *testing.T, id, customerID, purchase, deliveredCustomer, estimated string) domain.Order {
	t.Helper()
	purchaseAt := MustTime(t, purchase)
	return domain.Order{
		OrderID:               id,
		CustomerID:            customerID,
		Status:                domain.OrderStatusDelivered,
		PurchaseTimestamp:     purchaseAt,
		ApprovedAt:            TimePtr(purchaseAt.Add(time.Hour)),
		DeliveredCarrierDate:  TimePtr(purchaseAt.Add(25 * time.Hour)),
		DeliveredCustomerDate: TimePtr(MustTime(t, deliveredCustomer)),
		EstimatedDeliveryDate: MustTime(t, estimated),
	}
}
