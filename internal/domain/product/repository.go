package product

import "context"

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByProductID(ctx context.Context, productID string) (*Product, error)
	// GetByID resolves the numeric PK, for rows referenced through
	// foreign keys.
	GetByID(ctx context.Context, id uint64) (*Product, error)
	List(ctx context.Context) ([]Product, error)
}
