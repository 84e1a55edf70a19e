package market

import "time"

type CreateProductInput struct {
	SellerUserID string
	Title        string
	Description  string
	PriceCents   int64
}

type ProductDTO struct {
	ProductID   string    `json:"product_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderDTO struct {
	OrderID         string    `json:"order_id"`
	ProductID       string    `json:"product_id"`
	BuyerUserID     string    `json:"buyer_user_id"`
	AmountCents     int64     `json:"amount_cents"`
	CommissionCents int64     `json:"commission_cents"`
	CreatedAt       time.Time `json:"created_at"`
}
