package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/cashshift"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrRegisterCashTransactionCommandIsNotConstructed = errors.New(
	"RegisterCashTransactionCommand must be created via NewRegisterCashTransactionCommand constructor",
)

// RegisterCashTransactionCommand records a cash movement against the
// currently open shift.
type RegisterCashTransactionCommand struct { //nolint:recvcheck //using for validation
	transactionID kernel.UUID
	direction     cashshift.Direction
	amount        decimal.Decimal
	category      string
	description   string

	guard guard.ConstructorGuard
}

// NewRegisterCashTransactionCommand creates a command to record a cash
// movement. The amount must be strictly positive; direction carries the sign.
func NewRegisterCashTransactionCommand(
	transactionID kernel.UUID,
	direction cashshift.Direction,
	amount decimal.Decimal,
	category string,
	description string,
) (RegisterCashTransactionCommand, error) {
	if err := errors.Join(transactionID.Validate(), direction.Validate()); err != nil {
		return RegisterCashTransactionCommand{}, err
	}
	if !amount.IsPositive() {
		return RegisterCashTransactionCommand{}, errs.NewValueIsInvalidErrorWithCause("amount",
			errors.New("amount is not greater than 0"))
	}
	return RegisterCashTransactionCommand{
		transactionID: transactionID,
		direction:     direction,
		amount:        amount,
		category:      category,
		description:   description,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCashTransactionCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCashTransactionCommandIsNotConstructed)
}

// TransactionID returns the identifier the ledger entry will carry.
func (c RegisterCashTransactionCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

// Direction returns whether money enters or leaves the drawer.
func (c RegisterCashTransactionCommand) Direction() cashshift.Direction {
	return c.direction
}

// Amount returns the unsigned amount.
func (c RegisterCashTransactionCommand) Amount() decimal.Decimal {
	return c.amount
}

// Category returns the bookkeeping category label.
func (c RegisterCashTransactionCommand) Category() string {
	return c.category
}

// Description returns the free-text note.
func (c RegisterCashTransactionCommand) Description() string {
	return c.description
}
