package repomock

import (
	"context"

	"lively-marketplace/internal/domain/payout"
)

var _ payout.Repository = (*PayoutRepo)(nil)

type PayoutRepo struct {
	CreateFn                 func(ctx context.Context, r *payout.Request) error
	GetByPayoutIDFn          func(ctx context.Context, payoutID string) (*payout.Request, error)
	GetByPayoutIDForUpdateFn func(ctx context.Context, payoutID string) (*payout.Request, error)
	SaveFn                   func(ctx context.Context, r *payout.Request) error
	ListPendingFn            func(ctx context.Context) ([]payout.Request, error)
}

func (m *PayoutRepo) Create(ctx context.Context, r *payout.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return errUnimplemented
}

func (m *PayoutRepo) GetByPayoutID(ctx context.Context, payoutID string) (*payout.Request, error) {
	if m.GetByPayoutIDFn != nil {
		return m.GetByPayoutIDFn(ctx, payoutID)
	}
	return nil, errUnimplemented
}

func (m *PayoutRepo) GetByPayoutIDForUpdate(ctx context.Context, payoutID string) (*payout.Request, error) {
	if m.GetByPayoutIDForUpdateFn != nil {
		return m.GetByPayoutIDForUpdateFn(ctx, payoutID)
	}
	return nil, errUnimplemented
}

func (m *PayoutRepo) Save(ctx context.Context, r *payout.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return errUnimplemented
}

func (m *PayoutRepo) ListPending(ctx context.Context) ([]payout.Request, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx)
	}
	return nil, errUnimplemented
}
