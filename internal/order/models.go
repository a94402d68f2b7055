package order

import "time"

// Totals is the monetary snapshot computed once at placement. It is stored
// with the order and never recomputed afterwards.
type Totals struct {
	ItemsSubtotal int64 `json:"itemsSubtotal"`
	ShippingTotal int64 `json:"shippingTotal"`
	TaxCents      int64 `json:"taxCents"`
	TotalCents    int64 `json:"totalCents"`
}

// Item is a denormalized snapshot of one purchased line. Product data is
// copied in at placement so later catalog changes never rewrite history.
// Only Status mutates after placement.
type Item struct {
	ProductID        string `json:"productId" validate:"required"`
	ProductName      string `json:"productName"`
	ProductImage     string `json:"productImage"`
	Quantity         int    `json:"quantity" validate:"gt=0"`
	PriceCents       int64  `json:"priceCents" validate:"gte=0"`
	DeliveryOptionID string `json:"deliveryOptionId"`
	DeliveryDate     string `json:"deliveryDate"`
	Status           Status `json:"status"`
}

type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type Order struct {
	ID              string    `json:"id"`
	OrderDate       time.Time `json:"orderDate"`
	Items           []Item    `json:"items" validate:"required,min=1,dive"`
	Totals          Totals    `json:"totals"`
	ShippingAddress Address   `json:"shippingAddress"`
	PaymentMethod   string    `json:"paymentMethod"`
}
