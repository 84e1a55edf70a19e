package market

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	orderDomain "lively-marketplace/internal/domain/order"
	productDomain "lively-marketplace/internal/domain/product"
	"lively-marketplace/internal/domain/uow"
	userDomain "lively-marketplace/internal/domain/user"
	"lively-marketplace/pkg/id"
	"lively-marketplace/pkg/money"
)

type Usecase struct {
	products      productDomain.Repository
	orders        orderDomain.Repository
	users         userDomain.Repository
	uow           uow.UnitOfWork
	commissionPct int64
}

func NewUsecase(products productDomain.Repository, orders orderDomain.Repository, users userDomain.Repository, tx uow.UnitOfWork, commissionPct int64) *Usecase {
	return &Usecase{products: products, orders: orders, users: users, uow: tx, commissionPct: commissionPct}
}

func (u *Usecase) CreateProduct(ctx context.Context, in CreateProductInput) (*ProductDTO, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, errors.New("title is required")
	}
	if in.PriceCents <= 0 {
		return nil, money.ErrInvalidAmount
	}

	seller, err := u.users.GetByUserID(ctx, in.SellerUserID)
	if err != nil {
		return nil, err
	}

	p := &productDomain.Product{
		ProductID:   id.NewID32(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		SellerID:    seller.ID,
	}
	if err := u.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductDTO(p), nil
}

func (u *Usecase) List(ctx context.Context) ([]ProductDTO, error) {
	ps, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProductDTO, 0, len(ps))
	for i := range ps {
		out = append(out, *toProductDTO(&ps[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, productID string) (*ProductDTO, error) {
	p, err := u.products.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toProductDTO(p), nil
}

// Buy settles a product purchase: full-price debit of the buyer, credit of
// the seller minus commission and the Order record commit together or not
// at all. Both balances are locked for the duration of the transaction.
func (u *Usecase) Buy(ctx context.Context, buyerUserID, productID string) (*OrderDTO, error) {
	var dto *OrderDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Products.GetByProductID(ctx, productID)
		if err != nil {
			return err
		}

		buyer, err := r.Users.GetByUserIDForUpdate(ctx, buyerUserID)
		if err != nil {
			return err
		}
		if buyer.ID == p.SellerID {
			return productDomain.ErrSelfDealing
		}
		if err := buyer.Debit(p.PriceCents); err != nil {
			return err
		}

		seller, err := r.Users.GetByIDForUpdate(ctx, p.SellerID)
		if err != nil {
			return err
		}
		commission := money.Commission(p.PriceCents, u.commissionPct)
		if proceeds := p.PriceCents - commission; proceeds > 0 {
			if err := seller.Credit(proceeds); err != nil {
				return err
			}
		}

		o := &orderDomain.Order{
			OrderID:         id.NewID32(),
			BuyerID:         buyer.ID,
			ProductID:       p.ID,
			AmountCents:     p.PriceCents,
			CommissionCents: commission,
		}
		if err := r.Orders.Create(ctx, o); err != nil {
			return err
		}
		if err := r.Users.Save(ctx, buyer); err != nil {
			return err
		}
		if err := r.Users.Save(ctx, seller); err != nil {
			return err
		}

		dto = &OrderDTO{
			OrderID:         o.OrderID,
			ProductID:       p.ProductID,
			BuyerUserID:     buyer.UserID,
			AmountCents:     o.AmountCents,
			CommissionCents: o.CommissionCents,
			CreatedAt:       o.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("order_id", dto.OrderID).
		Str("product_id", dto.ProductID).
		Int64("amount_cents", dto.AmountCents).
		Int64("commission_cents", dto.CommissionCents).
		Msg("purchase settled")

	return dto, nil
}

// Orders lists the calling buyer's purchase history, newest first.
func (u *Usecase) Orders(ctx context.Context, buyerUserID string) ([]OrderDTO, error) {
	buyer, err := u.users.GetByUserID(ctx, buyerUserID)
	if err != nil {
		return nil, err
	}
	os, err := u.orders.ListByBuyerID(ctx, buyer.ID)
	if err != nil {
		return nil, err
	}
	out := make([]OrderDTO, 0, len(os))
	for _, o := range os {
		// orders are append-only and products are never deleted, so a
		// failed lookup is an infrastructure error, not a missing row
		p, err := u.products.GetByID(ctx, o.ProductID)
		if err != nil {
			return nil, err
		}
		out = append(out, OrderDTO{
			OrderID:         o.OrderID,
			ProductID:       p.ProductID,
			BuyerUserID:     buyerUserID,
			AmountCents:     o.AmountCents,
			CommissionCents: o.CommissionCents,
			CreatedAt:       o.CreatedAt,
		})
	}
	return out, nil
}

func toProductDTO(p *productDomain.Product) *ProductDTO {
	return &ProductDTO{
		ProductID:   p.ProductID,
		Title:       p.Title,
		Description: p.Description,
		Price:       money.Format(p.PriceCents),
		PriceCents:  p.PriceCents,
		CreatedAt:   p.CreatedAt,
	}
}
