package user

import (
	"errors"
	"time"

	"lively-marketplace/pkg/money"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type User struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	UserID       string    `gorm:"column:user_id;size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Username     string    `gorm:"column:username;size:80;uniqueIndex:ux_users_username" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;size:200" json:"-"`
	BalanceCents int64     `gorm:"column:balance_cents;not null;default:0" json:"balance_cents"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }

// Credit adds cents to the balance. Only bounded by the int64 range.
func (u *User) Credit(cents int64) error {
	if cents <= 0 {
		return money.ErrInvalidAmount
	}
	u.BalanceCents += cents
	return nil
}

// Debit removes cents from the balance, refusing to go negative.
// No mutation happens on failure. Callers must pair every debit with its
// counterparty credit inside a single transaction.
func (u *User) Debit(cents int64) error {
	if cents <= 0 {
		return money.ErrInvalidAmount
	}
	if u.BalanceCents < cents {
		return ErrInsufficientFunds
	}
	u.BalanceCents -= cents
	return nil
}
