package wallet

import (
	"context"

	"github.com/rs/zerolog/log"

	payoutDomain "lively-marketplace/internal/domain/payout"
	"lively-marketplace/internal/domain/uow"
	userDomain "lively-marketplace/internal/domain/user"
	"lively-marketplace/pkg/id"
	"lively-marketplace/pkg/money"
)

type Usecase struct {
	users userDomain.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(users userDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{users: users, uow: tx}
}

func (u *Usecase) Balance(ctx context.Context, userID string) (*BalanceDTO, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toBalanceDTO(usr), nil
}

// TopUp credits the user's own wallet (simulated deposit).
func (u *Usecase) TopUp(ctx context.Context, userID string, amountCents int64) (*BalanceDTO, error) {
	if amountCents <= 0 {
		return nil, money.ErrInvalidAmount
	}

	var dto *BalanceDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if err := usr.Credit(amountCents); err != nil {
			return err
		}
		if err := r.Users.Save(ctx, usr); err != nil {
			return err
		}
		dto = toBalanceDTO(usr)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", userID).Int64("amount_cents", amountCents).Msg("wallet topped up")
	return dto, nil
}

// Credit applies a confirmed external payment to the user's balance. Called
// from the payment webhook; delivery retries are deduplicated upstream by
// the idempotency middleware, keyed on the provider's event ID.
func (u *Usecase) Credit(ctx context.Context, userID string, amountCents int64) (*BalanceDTO, error) {
	return u.TopUp(ctx, userID, amountCents)
}

// RequestPayout debits the requested amount immediately and records a
// pending payout in the same transaction. An admin marks it paid later;
// there is no reversal path.
func (u *Usecase) RequestPayout(ctx context.Context, userID string, amountCents int64) (*PayoutDTO, error) {
	if amountCents <= 0 {
		return nil, money.ErrInvalidAmount
	}

	var dto *PayoutDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if err := usr.Debit(amountCents); err != nil {
			return err
		}

		req := &payoutDomain.Request{
			PayoutID:    id.NewID32(),
			UserID:      usr.ID,
			AmountCents: amountCents,
		}
		if err := r.Payouts.Create(ctx, req); err != nil {
			return err
		}
		if err := r.Users.Save(ctx, usr); err != nil {
			return err
		}

		dto = &PayoutDTO{
			PayoutID:    req.PayoutID,
			UserID:      usr.UserID,
			AmountCents: req.AmountCents,
			Paid:        req.Paid,
			CreatedAt:   req.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("payout_id", dto.PayoutID).Int64("amount_cents", amountCents).Msg("payout requested")
	return dto, nil
}

func toBalanceDTO(usr *userDomain.User) *BalanceDTO {
	return &BalanceDTO{
		UserID:       usr.UserID,
		Username:     usr.Username,
		Balance:      money.Format(usr.BalanceCents),
		BalanceCents: usr.BalanceCents,
	}
}
