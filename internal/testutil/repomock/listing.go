package repomock

import (
	"context"

	"lively-marketplace/internal/domain/listing"
)

var _ listing.Repository = (*ListingRepo)(nil)

type ListingRepo struct {
	CreateFn                  func(ctx context.Context, l *listing.Listing) error
	GetByListingIDFn          func(ctx context.Context, listingID string) (*listing.Listing, error)
	GetByListingIDForUpdateFn func(ctx context.Context, listingID string) (*listing.Listing, error)
	SaveFn                    func(ctx context.Context, l *listing.Listing) error
	ListFn                    func(ctx context.Context) ([]listing.Listing, error)
}

func (m *ListingRepo) Create(ctx context.Context, l *listing.Listing) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return errUnimplemented
}

func (m *ListingRepo) GetByListingID(ctx context.Context, listingID string) (*listing.Listing, error) {
	if m.GetByListingIDFn != nil {
		return m.GetByListingIDFn(ctx, listingID)
	}
	return nil, errUnimplemented
}

func (m *ListingRepo) GetByListingIDForUpdate(ctx context.Context, listingID string) (*listing.Listing, error) {
	if m.GetByListingIDForUpdateFn != nil {
		return m.GetByListingIDForUpdateFn(ctx, listingID)
	}
	return nil, errUnimplemented
}

func (m *ListingRepo) Save(ctx context.Context, l *listing.Listing) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return errUnimplemented
}

func (m *ListingRepo) List(ctx context.Context) ([]listing.Listing, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

var _ listing.PositionRepository = (*PositionRepo)(nil)

type PositionRepo struct {
	CreateFn          func(ctx context.Context, p *listing.Position) error
	ListByOwnerIDFn   func(ctx context.Context, ownerID uint64) ([]listing.Position, error)
	ListByListingIDFn func(ctx context.Context, listingID uint64) ([]listing.Position, error)
}

func (m *PositionRepo) Create(ctx context.Context, p *listing.Position) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return errUnimplemented
}

func (m *PositionRepo) ListByOwnerID(ctx context.Context, ownerID uint64) ([]listing.Position, error) {
	if m.ListByOwnerIDFn != nil {
		return m.ListByOwnerIDFn(ctx, ownerID)
	}
	return nil, errUnimplemented
}

func (m *PositionRepo) ListByListingID(ctx context.Context, listingID uint64) ([]listing.Position, error) {
	if m.ListByListingIDFn != nil {
		return m.ListByListingIDFn(ctx, listingID)
	}
	return nil, errUnimplemented
}
