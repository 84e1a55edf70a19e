package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lively-marketplace/internal/usecase/debt"
	"lively-marketplace/pkg/money"
)

type DebtHandler struct{ uc *debt.Usecase }

func NewDebtHandler(uc *debt.Usecase) *DebtHandler { return &DebtHandler{uc: uc} }

type createListingReq struct {
	Title string `json:"title" validate:"required,max=200"`
	// Decimal strings; parsed to cents, never floats.
	Principal string `json:"principal" validate:"required,moneyamt"`
	Target    string `json:"target" validate:"omitempty,moneyamt"`
	// Fraction: 0.12 = 12%
	Rate float64 `json:"rate" validate:"required,gt=0,lte=0.95"`
}

func (h *DebtHandler) Create(c echo.Context) error {
	var req createListingReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	principalCents, err := money.ParsePositive(req.Principal)
	if err != nil {
		return respondError(c, err)
	}
	var targetCents int64
	if req.Target != "" {
		if targetCents, err = money.ParsePositive(req.Target); err != nil {
			return respondError(c, err)
		}
	}
	dto, err := h.uc.CreateListing(c.Request().Context(), debt.CreateListingInput{
		SellerUserID:   actingUserID(c),
		Title:          req.Title,
		PrincipalCents: principalCents,
		InitialRate:    req.Rate,
		TargetCents:    targetCents,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DebtHandler) List(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *DebtHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("listing_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type investReq struct {
	Amount string `json:"amount" validate:"required,moneyamt"`
}

func (h *DebtHandler) Invest(c echo.Context) error {
	var req investReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	amountCents, err := money.ParsePositive(req.Amount)
	if err != nil {
		return respondError(c, err)
	}
	dto, err := h.uc.Invest(c.Request().Context(), actingUserID(c), c.Param("listing_id"), amountCents)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DebtHandler) Positions(c echo.Context) error {
	dtos, err := h.uc.Positions(c.Request().Context(), actingUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
