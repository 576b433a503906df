package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrCloseCashShiftCommandIsNotConstructed = errors.New(
	"CloseCashShiftCommand must be created via NewCloseCashShiftCommand constructor",
)

// CloseCashShiftCommand closes the currently open shift with the declared
// counted amount. The shift to close is the single open one, so no shift
// identifier is needed.
type CloseCashShiftCommand struct { //nolint:recvcheck //using for validation
	declaredAmount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCloseCashShiftCommand creates a command to close the open cash shift.
func NewCloseCashShiftCommand(declaredAmount decimal.Decimal) (CloseCashShiftCommand, error) {
	if declaredAmount.IsNegative() {
		return CloseCashShiftCommand{}, errs.NewValueIsInvalidErrorWithCause("declaredAmount",
			errors.New("declared amount is negative"))
	}
	return CloseCashShiftCommand{
		declaredAmount: declaredAmount,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseCashShiftCommand) Validate() error {
	return c.guard.Validate(ErrCloseCashShiftCommandIsNotConstructed)
}

// DeclaredAmount returns the counted cash at close.
func (c CloseCashShiftCommand) DeclaredAmount() decimal.Decimal {
	return c.declaredAmount
}
