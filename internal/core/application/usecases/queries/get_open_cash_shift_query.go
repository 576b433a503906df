package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrGetOpenCashShiftQueryIsNotConstructed = errors.New(
	"GetOpenCashShiftQuery must be created via NewGetOpenCashShiftQuery constructor",
)

// GetOpenCashShiftQuery retrieves the single open cash shift together with
// its running expected amount.
type GetOpenCashShiftQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenCashShiftQuery creates a query for the open cash shift.
func NewGetOpenCashShiftQuery() GetOpenCashShiftQuery {
	return GetOpenCashShiftQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenCashShiftQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenCashShiftQueryIsNotConstructed)
}

// GetOpenCashShiftQueryResponse is the open shift with its running balance.
// SystemAmount is the opening amount plus the signed sum of every ledger
// entry recorded so far.
type GetOpenCashShiftQueryResponse struct {
	ID            kernel.UUID
	OpenedBy      kernel.UUID
	OpeningAmount decimal.Decimal
	SystemAmount  decimal.Decimal
	OpenedAt      time.Time
}
