package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lively-marketplace/internal/usecase/admin"
)

type AdminHandler struct{ uc *admin.Usecase }

func NewAdminHandler(uc *admin.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

func (h *AdminHandler) ListUsers(c echo.Context) error {
	rows, err := h.uc.ListUsers(c.Request().Context(), actingUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *AdminHandler) ListPendingPayouts(c echo.Context) error {
	rows, err := h.uc.ListPendingPayouts(c.Request().Context(), actingUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *AdminHandler) MarkPayoutPaid(c echo.Context) error {
	req, err := h.uc.MarkPayoutPaid(c.Request().Context(), actingUserID(c), c.Param("payout_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, req)
}
