package product

import (
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("product not found")
	ErrSelfDealing = errors.New("cannot buy your own product")
)

type Product struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	ProductID   string `gorm:"column:product_id;size:32;uniqueIndex:ux_products_product_id" json:"product_id"`
	Title       string `gorm:"column:title;size:200;not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	PriceCents  int64  `gorm:"column:price_cents;not null" json:"price_cents"`
	// FK to users.id (numeric)
	SellerID  uint64    `gorm:"column:seller_id;not null;index" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Product) TableName() string { return "products" }
