// Package repomock holds function-backed mocks for every domain repository.
// Fill in the function fields a test needs; unfilled ones fail loudly.
package repomock

import (
	"context"
	"errors"

	"lively-marketplace/internal/domain/user"
)

var errUnimplemented = errors.New("repomock: method not implemented")

var _ user.Repository = (*UserRepo)(nil)

type UserRepo struct {
	CreateFn               func(ctx context.Context, u *user.User) error
	GetByUserIDFn          func(ctx context.Context, userID string) (*user.User, error)
	GetByUsernameFn        func(ctx context.Context, username string) (*user.User, error)
	GetByUserIDForUpdateFn func(ctx context.Context, userID string) (*user.User, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*user.User, error)
	SaveFn                 func(ctx context.Context, u *user.User) error
	ListFn                 func(ctx context.Context) ([]user.User, error)
}

func (m *UserRepo) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return errUnimplemented
}

func (m *UserRepo) GetByUserID(ctx context.Context, userID string) (*user.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, errUnimplemented
}

func (m *UserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, errUnimplemented
}

func (m *UserRepo) GetByUserIDForUpdate(ctx context.Context, userID string) (*user.User, error) {
	if m.GetByUserIDForUpdateFn != nil {
		return m.GetByUserIDForUpdateFn(ctx, userID)
	}
	return nil, errUnimplemented
}

func (m *UserRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*user.User, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *UserRepo) Save(ctx context.Context, u *user.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return errUnimplemented
}

func (m *UserRepo) List(ctx context.Context) ([]user.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}
