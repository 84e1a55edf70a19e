package mysql

import (
	"context"
	"errors"
	"testing"

	listingDomain "lively-marketplace/internal/domain/listing"
	"lively-marketplace/internal/domain/uow"
	userDomain "lively-marketplace/internal/domain/user"
	"lively-marketplace/internal/usecase/debt"
	"lively-marketplace/pkg/id"
)

func TestGormUoW_WithinTxCommits(t *testing.T) {
	db := openTestDB(t)
	tx := NewGormUoW(db)
	ctx := context.Background()

	userID := id.NewID32()
	err := tx.WithinTx(ctx, func(r uow.Repos) error {
		return r.Users.Create(ctx, &userDomain.User{UserID: userID, Username: "frank"})
	})
	if err != nil {
		t.Fatalf("within tx: %v", err)
	}

	if _, err := NewUserRepository(db).GetByUserID(ctx, userID); err != nil {
		t.Fatalf("committed row not visible: %v", err)
	}
}

func TestGormUoW_WithinTxRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	tx := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("boom")
	userID := id.NewID32()
	err := tx.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Users.Create(ctx, &userDomain.User{UserID: userID, Username: "gail"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error to propagate, got %v", err)
	}

	if _, err := NewUserRepository(db).GetByUserID(ctx, userID); !errors.Is(err, userDomain.ErrNotFound) {
		t.Fatalf("expected rollback, row is visible: %v", err)
	}
}

func TestGormUoW_WithinListingTxPassesLockedRow(t *testing.T) {
	db := openTestDB(t)
	tx := NewGormUoW(db)
	users := NewUserRepository(db)
	listings := NewListingRepository(db)
	ctx := context.Background()

	seller := &userDomain.User{UserID: id.NewID32(), Username: "henry"}
	if err := users.Create(ctx, seller); err != nil {
		t.Fatalf("seed seller: %v", err)
	}
	l := &listingDomain.Listing{
		ListingID: id.NewID32(), Title: "t", PrincipalCents: 100000,
		OriginationRate: 0.10, CurrentRate: 0.10, TargetCents: 100000, SellerID: seller.ID,
	}
	if err := listings.Create(ctx, l); err != nil {
		t.Fatalf("seed listing: %v", err)
	}

	err := tx.WithinListingTx(ctx, l.ListingID, func(r uow.Repos, got *listingDomain.Listing) error {
		if got.ID != l.ID {
			t.Fatalf("wrong row passed to fn: %+v", got)
		}
		got.TotalInvestedCents = 5000
		return r.Listings.Save(ctx, got)
	})
	if err != nil {
		t.Fatalf("within listing tx: %v", err)
	}

	reloaded, err := listings.GetByListingID(ctx, l.ListingID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.TotalInvestedCents != 5000 {
		t.Fatalf("mutation inside tx not committed: %+v", reloaded)
	}
}

func TestGormUoW_WithinListingTxUnknownListing(t *testing.T) {
	db := openTestDB(t)
	tx := NewGormUoW(db)

	err := tx.WithinListingTx(context.Background(), id.NewID32(), func(uow.Repos, *listingDomain.Listing) error {
		t.Fatal("fn must not run for unknown listing")
		return nil
	})
	if !errors.Is(err, listingDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Drives the investment usecase through the real transaction manager to
// check that a settlement either lands completely or not at all.
func TestInvestSettlement_EndToEnd(t *testing.T) {
	db := openTestDB(t)
	tx := NewGormUoW(db)
	users := NewUserRepository(db)
	listings := NewListingRepository(db)
	positions := NewPositionRepository(db)
	ctx := context.Background()

	seller := &userDomain.User{UserID: id.NewID32(), Username: "seller", BalanceCents: 0}
	investor := &userDomain.User{UserID: id.NewID32(), Username: "investor", BalanceCents: 100000}
	for _, u := range []*userDomain.User{seller, investor} {
		if err := users.Create(ctx, u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	l := &listingDomain.Listing{
		ListingID: id.NewID32(), Title: "Working capital", PrincipalCents: 500000,
		OriginationRate: 0.10, CurrentRate: 0.10, TargetCents: 500000, SellerID: seller.ID,
	}
	if err := listings.Create(ctx, l); err != nil {
		t.Fatalf("seed listing: %v", err)
	}

	uc := debt.NewUsecase(listings, positions, users, tx, 5)

	pos, err := uc.Invest(ctx, investor.UserID, l.ListingID, 40000)
	if err != nil {
		t.Fatalf("invest: %v", err)
	}
	if pos.PrincipalCents != 40000 {
		t.Fatalf("unexpected position: %+v", pos)
	}

	gotInvestor, _ := users.GetByUserID(ctx, investor.UserID)
	gotSeller, _ := users.GetByUserID(ctx, seller.UserID)
	if gotInvestor.BalanceCents != 60000 {
		t.Fatalf("investor balance: got %d want 60000", gotInvestor.BalanceCents)
	}
	// 5% commission on 40000 is 2000
	if gotSeller.BalanceCents != 38000 {
		t.Fatalf("seller balance: got %d want 38000", gotSeller.BalanceCents)
	}
	debited := int64(100000) - gotInvestor.BalanceCents
	if debited != gotSeller.BalanceCents+2000 {
		t.Fatalf("cents not conserved: debited %d, credited %d + commission 2000", debited, gotSeller.BalanceCents)
	}

	gotListing, _ := listings.GetByListingID(ctx, l.ListingID)
	if gotListing.TotalInvestedCents != 40000 {
		t.Fatalf("listing total: got %d want 40000", gotListing.TotalInvestedCents)
	}
	if gotListing.CurrentRate == 0.10 {
		t.Fatal("expected rate recomputation after settlement")
	}

	// second investment overdraws; nothing may change
	if _, err := uc.Invest(ctx, investor.UserID, l.ListingID, 70000); !errors.Is(err, userDomain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	after, _ := users.GetByUserID(ctx, investor.UserID)
	if after.BalanceCents != 60000 {
		t.Fatalf("failed settlement mutated investor balance: %d", after.BalanceCents)
	}
	afterListing, _ := listings.GetByListingID(ctx, l.ListingID)
	if afterListing.TotalInvestedCents != 40000 {
		t.Fatalf("failed settlement mutated listing total: %d", afterListing.TotalInvestedCents)
	}
	ps, err := positions.ListByListingID(ctx, gotListing.ID)
	if err != nil {
		t.Fatalf("list positions: %v", err)
	}
	if len(ps) != 1 {
		t.Fatalf("expected exactly one position, got %d", len(ps))
	}
}
