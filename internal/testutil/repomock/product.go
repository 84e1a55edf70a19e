package repomock

import (
	"context"

	"lively-marketplace/internal/domain/order"
	"lively-marketplace/internal/domain/product"
)

var _ product.Repository = (*ProductRepo)(nil)

type ProductRepo struct {
	CreateFn         func(ctx context.Context, p *product.Product) error
	GetByProductIDFn func(ctx context.Context, productID string) (*product.Product, error)
	GetByIDFn        func(ctx context.Context, id uint64) (*product.Product, error)
	ListFn           func(ctx context.Context) ([]product.Product, error)
}

func (m *ProductRepo) Create(ctx context.Context, p *product.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return errUnimplemented
}

func (m *ProductRepo) GetByProductID(ctx context.Context, productID string) (*product.Product, error) {
	if m.GetByProductIDFn != nil {
		return m.GetByProductIDFn(ctx, productID)
	}
	return nil, errUnimplemented
}

func (m *ProductRepo) GetByID(ctx context.Context, id uint64) (*product.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *ProductRepo) List(ctx context.Context) ([]product.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

var _ order.Repository = (*OrderRepo)(nil)

type OrderRepo struct {
	CreateFn        func(ctx context.Context, o *order.Order) error
	ListByBuyerIDFn func(ctx context.Context, buyerID uint64) ([]order.Order, error)
}

func (m *OrderRepo) Create(ctx context.Context, o *order.Order) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return errUnimplemented
}

func (m *OrderRepo) ListByBuyerID(ctx context.Context, buyerID uint64) ([]order.Order, error) {
	if m.ListByBuyerIDFn != nil {
		return m.ListByBuyerIDFn(ctx, buyerID)
	}
	return nil, errUnimplemented
}
