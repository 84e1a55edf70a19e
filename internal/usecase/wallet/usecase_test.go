package wallet

import (
	"context"
	"errors"
	"testing"

	payoutDomain "lively-marketplace/internal/domain/payout"
	"lively-marketplace/internal/domain/uow"
	userDomain "lively-marketplace/internal/domain/user"
	"lively-marketplace/internal/testutil/repomock"
	"lively-marketplace/internal/testutil/uowmock"
	"lively-marketplace/pkg/money"
)

const userPubID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

type fixture struct {
	user    *userDomain.User
	payouts []payoutDomain.Request
	uc      *Usecase
}

func newFixture(t *testing.T, balance int64) *fixture {
	t.Helper()
	f := &fixture{
		user: &userDomain.User{ID: 1, UserID: userPubID, Username: "wanda", BalanceCents: balance},
	}
	users := &repomock.UserRepo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
			if userID == userPubID {
				return f.user, nil
			}
			return nil, userDomain.ErrNotFound
		},
		GetByUserIDForUpdateFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
			if userID == userPubID {
				return f.user, nil
			}
			return nil, userDomain.ErrNotFound
		},
		SaveFn: func(ctx context.Context, u *userDomain.User) error { return nil },
	}
	pr := &repomock.PayoutRepo{
		CreateFn: func(ctx context.Context, r *payoutDomain.Request) error {
			f.payouts = append(f.payouts, *r)
			return nil
		},
	}
	r := uow.Repos{Users: users, Payouts: pr}
	f.uc = NewUsecase(users, uowmock.Passthrough(r, nil))
	return f
}

func TestTopUp(t *testing.T) {
	f := newFixture(t, 100)
	dto, err := f.uc.TopUp(context.Background(), userPubID, 2_500)
	if err != nil {
		t.Fatalf("TopUp: %v", err)
	}
	if f.user.BalanceCents != 2_600 {
		t.Errorf("balance = %d, want 2600", f.user.BalanceCents)
	}
	if dto.BalanceCents != 2_600 || dto.Balance != "26.00" {
		t.Errorf("unexpected dto: %+v", dto)
	}
}

func TestTopUp_InvalidAmount(t *testing.T) {
	f := newFixture(t, 100)
	for _, cents := range []int64{0, -5} {
		if _, err := f.uc.TopUp(context.Background(), userPubID, cents); !errors.Is(err, money.ErrInvalidAmount) {
			t.Errorf("cents %d: want ErrInvalidAmount, got %v", cents, err)
		}
	}
	if f.user.BalanceCents != 100 {
		t.Errorf("balance changed: %d", f.user.BalanceCents)
	}
}

func TestRequestPayout_DebitsUpFront(t *testing.T) {
	f := newFixture(t, 5_000)
	dto, err := f.uc.RequestPayout(context.Background(), userPubID, 3_000)
	if err != nil {
		t.Fatalf("RequestPayout: %v", err)
	}
	if f.user.BalanceCents != 2_000 {
		t.Errorf("balance = %d, want 2000", f.user.BalanceCents)
	}
	if len(f.payouts) != 1 {
		t.Fatalf("payouts = %d, want 1", len(f.payouts))
	}
	req := f.payouts[0]
	if req.AmountCents != 3_000 || req.Paid || req.UserID != 1 {
		t.Errorf("unexpected payout: %+v", req)
	}
	if dto.PayoutID != req.PayoutID {
		t.Errorf("dto id mismatch: %+v", dto)
	}
}

func TestRequestPayout_InsufficientFunds(t *testing.T) {
	f := newFixture(t, 1_000)
	_, err := f.uc.RequestPayout(context.Background(), userPubID, 3_000)
	if !errors.Is(err, userDomain.ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	if f.user.BalanceCents != 1_000 || len(f.payouts) != 0 {
		t.Errorf("failed payout mutated state")
	}
}

func TestBalance(t *testing.T) {
	f := newFixture(t, 123)
	dto, err := f.uc.Balance(context.Background(), userPubID)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if dto.Balance != "1.23" || dto.Username != "wanda" {
		t.Errorf("unexpected dto: %+v", dto)
	}
}
