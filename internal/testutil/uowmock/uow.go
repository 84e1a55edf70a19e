package uowmock

import (
	"context"
	"errors"

	"lively-marketplace/internal/domain/listing"
	"lively-marketplace/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork. Fill in the
// function fields you need; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinListingTxFn func(ctx context.Context, listingID string, fn func(r uow.Repos, l *listing.Listing) error) error
}

// Passthrough returns a UoW that simply invokes the callback against the
// given repos, with no transactional behavior. Handy when a test only cares
// about the business rules inside the callback.
func Passthrough(r uow.Repos, listings map[string]*listing.Listing) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinListingTxFn: func(ctx context.Context, listingID string, fn func(uow.Repos, *listing.Listing) error) error {
			l, ok := listings[listingID]
			if !ok {
				return listing.ErrNotFound
			}
			return fn(r, l)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinListingTx(ctx context.Context, listingID string, fn func(r uow.Repos, l *listing.Listing) error) error {
	if m.WithinListingTxFn != nil {
		return m.WithinListingTxFn(ctx, listingID, fn)
	}
	return errUnimplemented
}
