package commands

import (
	"errors"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a delivery confirmation for a single order.
// Code is the recipient-presented delivery code; nil when the order does not
// require one.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	code    *string

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to confirm delivery of an order.
func NewDeliverOrderCommand(orderID kernel.UUID, code *string) (DeliverOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeliverOrderCommand{}, err
	}
	return DeliverOrderCommand{
		orderID: orderID,
		code:    code,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Code returns the presented delivery code, nil when none was supplied.
func (c DeliverOrderCommand) Code() *string {
	return c.code
}
