package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// GetByUserIDForUpdate locks the row (SELECT ... FOR UPDATE); only
	// meaningful inside a transaction.
	GetByUserIDForUpdate(ctx context.Context, userID string) (*User, error)
	// GetByIDForUpdate is the same lock keyed by the numeric PK, for
	// counterparties referenced through foreign keys.
	GetByIDForUpdate(ctx context.Context, id uint64) (*User, error)
	Save(ctx context.Context, u *User) error
	List(ctx context.Context) ([]User, error)
}
