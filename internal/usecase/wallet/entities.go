package wallet

import "time"

type BalanceDTO struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Balance      string `json:"balance"`
	BalanceCents int64  `json:"balance_cents"`
}

type PayoutDTO struct {
	PayoutID    string    `json:"payout_id"`
	UserID      string    `json:"user_id"`
	AmountCents int64     `json:"amount_cents"`
	Paid        bool      `json:"paid"`
	CreatedAt   time.Time `json:"created_at"`
}
