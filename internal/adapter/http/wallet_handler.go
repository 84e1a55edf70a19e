package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lively-marketplace/internal/usecase/wallet"
	"lively-marketplace/pkg/money"
)

type WalletHandler struct{ uc *wallet.Usecase }

func NewWalletHandler(uc *wallet.Usecase) *WalletHandler { return &WalletHandler{uc: uc} }

func (h *WalletHandler) Balance(c echo.Context) error {
	dto, err := h.uc.Balance(c.Request().Context(), actingUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type amountReq struct {
	Amount string `json:"amount" validate:"required,moneyamt"`
}

func (h *WalletHandler) TopUp(c echo.Context) error {
	var req amountReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	cents, err := money.ParsePositive(req.Amount)
	if err != nil {
		return respondError(c, err)
	}
	dto, err := h.uc.TopUp(c.Request().Context(), actingUserID(c), cents)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WalletHandler) RequestPayout(c echo.Context) error {
	var req amountReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	cents, err := money.ParsePositive(req.Amount)
	if err != nil {
		return respondError(c, err)
	}
	dto, err := h.uc.RequestPayout(c.Request().Context(), actingUserID(c), cents)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type webhookCreditReq struct {
	UserID string `json:"user_id" validate:"required,hex32"`
	Amount string `json:"amount" validate:"required,moneyamt"`
}

// PaymentWebhook credits a user after a confirmed external payment. Sits
// behind the idempotency middleware: retried deliveries of the same event
// replay the first response instead of crediting again.
func (h *WalletHandler) PaymentWebhook(c echo.Context) error {
	var req webhookCreditReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	cents, err := money.ParsePositive(req.Amount)
	if err != nil {
		return respondError(c, err)
	}
	dto, err := h.uc.Credit(c.Request().Context(), req.UserID, cents)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
