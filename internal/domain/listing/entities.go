package listing

import (
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("listing not found")
	ErrSelfDealing = errors.New("cannot invest in your own listing")
)

// Listing is a debt-investment opportunity created by a seller seeking
// funding. It never closes and is never deleted; only investment
// settlement mutates it (total invested and current rate).
type Listing struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	ListingID      string `gorm:"column:listing_id;size:32;uniqueIndex:ux_listings_listing_id" json:"listing_id"`
	Title          string `gorm:"column:title;size:200;not null" json:"title"`
	PrincipalCents int64  `gorm:"column:principal_cents;not null" json:"principal_cents"`
	// Rate fixed at listing time; CurrentRate starts here and is adjusted
	// on every investment. Both are fractions (0.12 = 12%).
	OriginationRate    float64 `gorm:"column:origination_rate;not null" json:"origination_rate"`
	CurrentRate        float64 `gorm:"column:current_rate;not null" json:"current_rate"`
	TargetCents        int64   `gorm:"column:target_cents;not null" json:"target_cents"`
	TotalInvestedCents int64   `gorm:"column:total_invested_cents;not null;default:0" json:"total_invested_cents"`
	// FK to users.id (numeric)
	SellerID  uint64    `gorm:"column:seller_id;not null;index" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Listing) TableName() string { return "debt_listings" }

// Position is one investor's stake in a listing. One row per purchase
// event; repeat investments by the same investor are not merged.
type Position struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	PositionID string `gorm:"column:position_id;size:32;uniqueIndex:ux_positions_position_id" json:"position_id"`
	// FKs to users.id / debt_listings.id (numeric)
	OwnerID        uint64    `gorm:"column:owner_id;not null;index" json:"-"`
	ListingID      uint64    `gorm:"column:listing_id;not null;index" json:"-"`
	PrincipalCents int64     `gorm:"column:principal_cents;not null" json:"principal_cents"`
	Active         bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Position) TableName() string { return "debt_positions" }
