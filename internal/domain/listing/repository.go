package listing

import "context"

type Repository interface {
	Create(ctx context.Context, l *Listing) error
	GetByListingID(ctx context.Context, listingID string) (*Listing, error)
	// GetByListingIDForUpdate locks the row (SELECT ... FOR UPDATE) so
	// concurrent investments against the same listing serialize.
	GetByListingIDForUpdate(ctx context.Context, listingID string) (*Listing, error)
	Save(ctx context.Context, l *Listing) error
	List(ctx context.Context) ([]Listing, error)
}

type PositionRepository interface {
	Create(ctx context.Context, p *Position) error
	ListByOwnerID(ctx context.Context, ownerID uint64) ([]Position, error)
	ListByListingID(ctx context.Context, listingID uint64) ([]Position, error)
}
