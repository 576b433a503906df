// Package queries contains read-only operations that bypass the domain model
// and read projections straight from the database. Implements the query side
// of the CQRS architecture.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrGetUndeliveredOrdersQueryIsNotConstructed = errors.New(
	"GetUndeliveredOrdersQuery must be created via NewGetUndeliveredOrdersQuery constructor",
)

// GetUndeliveredOrdersQuery retrieves every order that has not reached a
// terminal status, for the fulfillment dashboard.
type GetUndeliveredOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUndeliveredOrdersQuery creates a query for in-flight orders.
func NewGetUndeliveredOrdersQuery() GetUndeliveredOrdersQuery {
	return GetUndeliveredOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUndeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUndeliveredOrdersQueryIsNotConstructed)
}

// GetUndeliveredOrdersQueryResponse is one in-flight order row.
type GetUndeliveredOrdersQueryResponse struct {
	ID        kernel.UUID
	Number    string
	Status    string
	Total     decimal.Decimal
	RouteID   *kernel.UUID
	CreatedAt time.Time
}
