package domain

type Seller struct {
	SellerID string
	City     string
	State    string
}
