package payout

import "context"

type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByPayoutID(ctx context.Context, payoutID string) (*Request, error)
	GetByPayoutIDForUpdate(ctx context.Context, payoutID string) (*Request, error)
	Save(ctx context.Context, r *Request) error
	ListPending(ctx context.Context) ([]Request, error)
}
