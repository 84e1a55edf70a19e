package payout

import (
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("payout request not found")
	ErrAlreadyPaid = errors.New("payout request already paid")
)

// Request records a user's withdrawal request. Funds are debited when the
// request is created; an admin later flips Paid. There is no reversal path.
type Request struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	PayoutID string `gorm:"column:payout_id;size:32;uniqueIndex:ux_payouts_payout_id" json:"payout_id"`
	// FK to users.id (numeric)
	UserID      uint64    `gorm:"column:user_id;not null;index" json:"-"`
	AmountCents int64     `gorm:"column:amount_cents;not null" json:"amount_cents"`
	Paid        bool      `gorm:"column:paid;not null;default:false" json:"paid"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Request) TableName() string { return "payout_requests" }
