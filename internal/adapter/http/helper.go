package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"lively-marketplace/internal/adapter/middleware"
	"lively-marketplace/internal/domain/listing"
	"lively-marketplace/internal/domain/payout"
	"lively-marketplace/internal/domain/product"
	"lively-marketplace/internal/domain/user"
	adminUC "lively-marketplace/internal/usecase/admin"
	authUC "lively-marketplace/internal/usecase/auth"
	"lively-marketplace/pkg/money"
)

// actingUserID reads the identity the auth middleware resolved from the
// bearer token. Every usecase call receives it explicitly.
func actingUserID(c echo.Context) string {
	v, _ := c.Get(middleware.CtxUserID).(string)
	return v
}

// respondError maps domain errors to HTTP statuses. Settlements abort
// all-or-nothing, so every 4xx here means "nothing happened".
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, money.ErrInvalidAmount):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid amount"})
	case errors.Is(err, user.ErrInsufficientFunds):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "insufficient funds"})
	case errors.Is(err, listing.ErrSelfDealing), errors.Is(err, product.ErrSelfDealing):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, adminUC.ErrAdminRequired):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, user.ErrNotFound), errors.Is(err, listing.ErrNotFound),
		errors.Is(err, product.ErrNotFound), errors.Is(err, payout.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, user.ErrUsernameTaken), errors.Is(err, payout.ErrAlreadyPaid):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, authUC.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, authUC.ErrWeakPassword):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	return true, nil
}
