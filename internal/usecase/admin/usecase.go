package admin

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	payoutDomain "lively-marketplace/internal/domain/payout"
	"lively-marketplace/internal/domain/uow"
	userDomain "lively-marketplace/internal/domain/user"
	"lively-marketplace/pkg/money"
)

var ErrAdminRequired = errors.New("admin privileges required")

type Usecase struct {
	users   userDomain.Repository
	payouts payoutDomain.Repository
	uow     uow.UnitOfWork
}

func NewUsecase(users userDomain.Repository, payouts payoutDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{users: users, payouts: payouts, uow: tx}
}

type UserRow struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Balance   string    `json:"balance"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *Usecase) requireAdmin(ctx context.Context, actorUserID string) error {
	actor, err := u.users.GetByUserID(ctx, actorUserID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}

func (u *Usecase) ListUsers(ctx context.Context, actorUserID string) ([]UserRow, error) {
	if err := u.requireAdmin(ctx, actorUserID); err != nil {
		return nil, err
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserRow, 0, len(users))
	for _, usr := range users {
		out = append(out, UserRow{
			UserID:    usr.UserID,
			Username:  usr.Username,
			Balance:   money.Format(usr.BalanceCents),
			IsAdmin:   usr.IsAdmin,
			CreatedAt: usr.CreatedAt,
		})
	}
	return out, nil
}

func (u *Usecase) ListPendingPayouts(ctx context.Context, actorUserID string) ([]payoutDomain.Request, error) {
	if err := u.requireAdmin(ctx, actorUserID); err != nil {
		return nil, err
	}
	return u.payouts.ListPending(ctx)
}

// MarkPayoutPaid resolves a payout request. Funds were already debited when
// the request was created, so the only mutation is the paid flag; marking
// twice fails with ErrAlreadyPaid.
func (u *Usecase) MarkPayoutPaid(ctx context.Context, actorUserID, payoutID string) (*payoutDomain.Request, error) {
	if err := u.requireAdmin(ctx, actorUserID); err != nil {
		return nil, err
	}

	var out *payoutDomain.Request
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Payouts.GetByPayoutIDForUpdate(ctx, payoutID)
		if err != nil {
			return err
		}
		if req.Paid {
			return payoutDomain.ErrAlreadyPaid
		}
		req.Paid = true
		if err := r.Payouts.Save(ctx, req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("payout_id", payoutID).Str("admin_id", actorUserID).Msg("payout marked paid")
	return out, nil
}
