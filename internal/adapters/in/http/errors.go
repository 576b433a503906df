package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/application/usecases/commands"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/cashshift"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/customer"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/order"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
)

// Error is the JSON error envelope returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain errors to HTTP statuses. Validation failures are
// client errors, business conflicts map to 409, everything unknown is a 500
// with the detail withheld.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, cashshift.ErrNoOpenShift):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidDeliveryCode),
		errors.Is(err, cashshift.ErrShiftAlreadyOpen),
		errors.Is(err, cashshift.ErrShiftAlreadyClosed),
		errors.Is(err, customer.ErrDuplicateTaxID):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})

	case errors.Is(err, commands.ErrFeeRequiresAdmin):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})

	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
