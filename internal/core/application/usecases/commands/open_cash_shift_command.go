package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrOpenCashShiftCommandIsNotConstructed = errors.New(
	"OpenCashShiftCommand must be created via NewOpenCashShiftCommand constructor",
)

// OpenCashShiftCommand opens a cash shift with the counted drawer amount.
type OpenCashShiftCommand struct { //nolint:recvcheck //using for validation
	shiftID       kernel.UUID
	openedBy      kernel.UUID
	openingAmount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewOpenCashShiftCommand creates a command to open a cash shift.
func NewOpenCashShiftCommand(
	shiftID kernel.UUID,
	openedBy kernel.UUID,
	openingAmount decimal.Decimal,
) (OpenCashShiftCommand, error) {
	if err := errors.Join(shiftID.Validate(), openedBy.Validate()); err != nil {
		return OpenCashShiftCommand{}, err
	}
	if openingAmount.IsNegative() {
		return OpenCashShiftCommand{}, errs.NewValueIsInvalidErrorWithCause("openingAmount",
			errors.New("opening amount is negative"))
	}
	return OpenCashShiftCommand{
		shiftID:       shiftID,
		openedBy:      openedBy,
		openingAmount: openingAmount,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenCashShiftCommand) Validate() error {
	return c.guard.Validate(ErrOpenCashShiftCommandIsNotConstructed)
}

// ShiftID returns the identifier the new shift will carry.
func (c OpenCashShiftCommand) ShiftID() kernel.UUID {
	return c.shiftID
}

// OpenedBy returns the user opening the shift.
func (c OpenCashShiftCommand) OpenedBy() kernel.UUID {
	return c.openedBy
}

// OpeningAmount returns the counted cash at open.
func (c OpenCashShiftCommand) OpeningAmount() decimal.Decimal {
	return c.openingAmount
}
