package order

import "context"

type Repository interface {
	Create(ctx context.Context, o *Order) error
	ListByBuyerID(ctx context.Context, buyerID uint64) ([]Order, error)
}
