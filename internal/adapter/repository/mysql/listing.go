package mysql

import (
	"context"
	"errors"

	listingDomain "lively-marketplace/internal/domain/listing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListingRepository struct{ db *gorm.DB }

func NewListingRepository(db *gorm.DB) *ListingRepository { return &ListingRepository{db: db} }

func (r *ListingRepository) Create(ctx context.Context, l *listingDomain.Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ListingRepository) GetByListingID(ctx context.Context, listingID string) (*listingDomain.Listing, error) {
	var out listingDomain.Listing
	res := r.db.WithContext(ctx).Where("listing_id = ?", listingID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, listingDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ListingRepository) GetByListingIDForUpdate(ctx context.Context, listingID string) (*listingDomain.Listing, error) {
	var out listingDomain.Listing
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("listing_id = ?", listingID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, listingDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ListingRepository) Save(ctx context.Context, l *listingDomain.Listing) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *ListingRepository) List(ctx context.Context) ([]listingDomain.Listing, error) {
	var out []listingDomain.Listing
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

type PositionRepository struct{ db *gorm.DB }

func NewPositionRepository(db *gorm.DB) *PositionRepository { return &PositionRepository{db: db} }

func (r *PositionRepository) Create(ctx context.Context, p *listingDomain.Position) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PositionRepository) ListByOwnerID(ctx context.Context, ownerID uint64) ([]listingDomain.Position, error) {
	var out []listingDomain.Position
	res := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PositionRepository) ListByListingID(ctx context.Context, listingID uint64) ([]listingDomain.Position, error) {
	var out []listingDomain.Position
	res := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
