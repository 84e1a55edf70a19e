package debt

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	listingDomain "lively-marketplace/internal/domain/listing"
	"lively-marketplace/internal/domain/uow"
	userDomain "lively-marketplace/internal/domain/user"
	"lively-marketplace/pkg/id"
	"lively-marketplace/pkg/money"
)

type Usecase struct {
	listings      listingDomain.Repository
	positions     listingDomain.PositionRepository
	users         userDomain.Repository
	uow           uow.UnitOfWork
	commissionPct int64
}

func NewUsecase(listings listingDomain.Repository, positions listingDomain.PositionRepository, users userDomain.Repository, tx uow.UnitOfWork, commissionPct int64) *Usecase {
	return &Usecase{listings: listings, positions: positions, users: users, uow: tx, commissionPct: commissionPct}
}

func (u *Usecase) CreateListing(ctx context.Context, in CreateListingInput) (*ListingDTO, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, errors.New("title is required")
	}
	if in.PrincipalCents <= 0 || in.TargetCents < 0 {
		return nil, money.ErrInvalidAmount
	}
	if in.InitialRate <= 0 || in.InitialRate > RateCap {
		return nil, money.ErrInvalidAmount
	}

	seller, err := u.users.GetByUserID(ctx, in.SellerUserID)
	if err != nil {
		return nil, err
	}

	target := in.TargetCents
	if target == 0 {
		target = in.PrincipalCents
	}
	// 1-cent floor keeps the funding ratio well defined
	if target < 1 {
		target = 1
	}

	l := &listingDomain.Listing{
		ListingID:       id.NewID32(),
		Title:           strings.TrimSpace(in.Title),
		PrincipalCents:  in.PrincipalCents,
		OriginationRate: in.InitialRate,
		CurrentRate:     in.InitialRate,
		TargetCents:     target,
		SellerID:        seller.ID,
	}
	if err := u.listings.Create(ctx, l); err != nil {
		return nil, err
	}

	log.Info().
		Str("listing_id", l.ListingID).
		Int64("principal_cents", l.PrincipalCents).
		Float64("rate", l.CurrentRate).
		Msg("debt listing created")

	return toListingDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, listingID string) (*ListingDTO, error) {
	l, err := u.listings.GetByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	return toListingDTO(l), nil
}

func (u *Usecase) List(ctx context.Context) ([]ListingDTO, error) {
	ls, err := u.listings.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ListingDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toListingDTO(&ls[i]))
	}
	return out, nil
}

// Invest settles an investment: the investor's debit, the seller's credit
// (minus commission), the new position, the listing total and the rate
// recomputation all commit or roll back together. The listing row is locked
// for the whole transaction, so two simultaneous investments serialize and
// both end up in the total.
func (u *Usecase) Invest(ctx context.Context, investorUserID, listingID string, amountCents int64) (*PositionDTO, error) {
	if amountCents <= 0 {
		return nil, money.ErrInvalidAmount
	}

	var dto *PositionDTO
	err := u.uow.WithinListingTx(ctx, listingID, func(r uow.Repos, l *listingDomain.Listing) error {
		investor, err := r.Users.GetByUserIDForUpdate(ctx, investorUserID)
		if err != nil {
			return err
		}
		if investor.ID == l.SellerID {
			return listingDomain.ErrSelfDealing
		}
		if err := investor.Debit(amountCents); err != nil {
			return err
		}

		seller, err := r.Users.GetByIDForUpdate(ctx, l.SellerID)
		if err != nil {
			return err
		}
		commission := money.Commission(amountCents, u.commissionPct)
		if proceeds := amountCents - commission; proceeds > 0 {
			if err := seller.Credit(proceeds); err != nil {
				return err
			}
		}

		pos := &listingDomain.Position{
			PositionID:     id.NewID32(),
			OwnerID:        investor.ID,
			ListingID:      l.ID,
			PrincipalCents: amountCents,
			Active:         true,
		}
		if err := r.Positions.Create(ctx, pos); err != nil {
			return err
		}

		l.TotalInvestedCents += amountCents
		l.CurrentRate = NextRate(l.CurrentRate, l.TotalInvestedCents, l.TargetCents)

		if err := r.Listings.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Users.Save(ctx, investor); err != nil {
			return err
		}
		if err := r.Users.Save(ctx, seller); err != nil {
			return err
		}

		dto = &PositionDTO{
			PositionID:         pos.PositionID,
			ListingID:          l.ListingID,
			OwnerUserID:        investor.UserID,
			PrincipalCents:     pos.PrincipalCents,
			Active:             pos.Active,
			ListingRate:        l.CurrentRate,
			TotalInvestedCents: l.TotalInvestedCents,
			CreatedAt:          pos.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("listing_id", dto.ListingID).
		Str("investor_id", dto.OwnerUserID).
		Int64("amount_cents", dto.PrincipalCents).
		Float64("new_rate", dto.ListingRate).
		Msg("investment settled")

	return dto, nil
}

// Positions lists the calling investor's stakes.
func (u *Usecase) Positions(ctx context.Context, ownerUserID string) ([]PositionDTO, error) {
	owner, err := u.users.GetByUserID(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	ps, err := u.positions.ListByOwnerID(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	out := make([]PositionDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, PositionDTO{
			PositionID:     p.PositionID,
			OwnerUserID:    ownerUserID,
			PrincipalCents: p.PrincipalCents,
			Active:         p.Active,
			CreatedAt:      p.CreatedAt,
		})
	}
	return out, nil
}

func toListingDTO(l *listingDomain.Listing) *ListingDTO {
	return &ListingDTO{
		ListingID:          l.ListingID,
		Title:              l.Title,
		Principal:          money.Format(l.PrincipalCents),
		PrincipalCents:     l.PrincipalCents,
		OriginationRate:    l.OriginationRate,
		CurrentRate:        l.CurrentRate,
		TargetCents:        l.TargetCents,
		TotalInvestedCents: l.TotalInvestedCents,
		CreatedAt:          l.CreatedAt,
	}
}
