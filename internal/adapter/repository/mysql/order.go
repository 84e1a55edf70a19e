package mysql

import (
	"context"

	orderDomain "lively-marketplace/internal/domain/order"

	"gorm.io/gorm"
)

type OrderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{db: db} }

func (r *OrderRepository) Create(ctx context.Context, o *orderDomain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) ListByBuyerID(ctx context.Context, buyerID uint64) ([]orderDomain.Order, error) {
	var out []orderDomain.Order
	res := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
