package mysql

import (
	"context"
	"errors"

	payoutDomain "lively-marketplace/internal/domain/payout"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PayoutRepository struct{ db *gorm.DB }

func NewPayoutRepository(db *gorm.DB) *PayoutRepository { return &PayoutRepository{db: db} }

func (r *PayoutRepository) Create(ctx context.Context, req *payoutDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *PayoutRepository) GetByPayoutID(ctx context.Context, payoutID string) (*payoutDomain.Request, error) {
	var out payoutDomain.Request
	res := r.db.WithContext(ctx).Where("payout_id = ?", payoutID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, payoutDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PayoutRepository) GetByPayoutIDForUpdate(ctx context.Context, payoutID string) (*payoutDomain.Request, error) {
	var out payoutDomain.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("payout_id = ?", payoutID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, payoutDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PayoutRepository) Save(ctx context.Context, req *payoutDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *PayoutRepository) ListPending(ctx context.Context) ([]payoutDomain.Request, error) {
	var out []payoutDomain.Request
	res := r.db.WithContext(ctx).
		Where("paid = ?", false).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
