package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lively-marketplace/internal/usecase/market"
	"lively-marketplace/pkg/money"
)

type ProductHandler struct{ uc *market.Usecase }

func NewProductHandler(uc *market.Usecase) *ProductHandler { return &ProductHandler{uc: uc} }

type createProductReq struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required,moneyamt"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	priceCents, err := money.ParsePositive(req.Price)
	if err != nil {
		return respondError(c, err)
	}
	dto, err := h.uc.CreateProduct(c.Request().Context(), market.CreateProductInput{
		SellerUserID: actingUserID(c),
		Title:        req.Title,
		Description:  req.Description,
		PriceCents:   priceCents,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProductHandler) List(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ProductHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("product_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProductHandler) Orders(c echo.Context) error {
	dtos, err := h.uc.Orders(c.Request().Context(), actingUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ProductHandler) Buy(c echo.Context) error {
	dto, err := h.uc.Buy(c.Request().Context(), actingUserID(c), c.Param("product_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
