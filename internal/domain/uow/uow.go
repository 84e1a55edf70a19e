package uow

import (
	"context"

	"lively-marketplace/internal/domain/listing"
	"lively-marketplace/internal/domain/order"
	"lively-marketplace/internal/domain/payout"
	"lively-marketplace/internal/domain/product"
	"lively-marketplace/internal/domain/user"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Users     user.Repository
	Products  product.Repository
	Orders    order.Repository
	Listings  listing.Repository
	Positions listing.PositionRepository
	Payouts   payout.Repository
}

// UnitOfWork runs a settlement as a single all-or-nothing transaction.
// Every debit/credit pair and its dependent record creation must go
// through one of these; partial application is a correctness violation.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the listing row first, then pass it in
	WithinListingTx(ctx context.Context, listingID string, fn func(r Repos, l *listing.Listing) error) error
}
