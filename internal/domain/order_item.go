package domain

import "math"

type OrderItem struct {
	OrderID      string
	ProductID    string
	SellerID     string
	Price        float64
	FreightValue float64
}

// TotalPrice is the item price plus freight, rounded to cents.
func (i OrderItem) TotalPrice() float64 {
	return math.Round((i.Price+i.FreightValue)*100) / 100
}
