package order

import "time"

// Order is the append-only audit record of a completed product purchase.
// Never updated, never deleted.
type Order struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	OrderID string `gorm:"column:order_id;size:32;uniqueIndex:ux_orders_order_id" json:"order_id"`
	// FKs to users.id / products.id (numeric)
	BuyerID         uint64    `gorm:"column:buyer_id;not null;index" json:"-"`
	ProductID       uint64    `gorm:"column:product_id;not null;index" json:"-"`
	AmountCents     int64     `gorm:"column:amount_cents;not null" json:"amount_cents"`
	CommissionCents int64     `gorm:"column:commission_cents;not null" json:"commission_cents"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Order) TableName() string { return "orders" }
