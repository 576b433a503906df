package cashshift

import (
	"errors"
	"fmt"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrTransactionIsNotConstructed is returned when a Transaction instance was
// not created through the NewTransaction factory method.
var ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction constructor")

// Direction signs a cash transaction: money entering or leaving the drawer.
type Direction int

const (
	// DirectionUnknown represents an invalid or undefined direction.
	DirectionUnknown Direction = iota

	// In is money entering the drawer.
	In

	// Out is money leaving the drawer.
	Out
)

func getDirectionStrings() map[Direction]string {
	return map[Direction]string{
		DirectionUnknown: "Unknown",
		In:               "IN",
		Out:              "OUT",
	}
}

// DirectionFromString parses a direction label ("IN" or "OUT").
func DirectionFromString(s string) (Direction, error) {
	for d, str := range getDirectionStrings() {
		if str == s && d != DirectionUnknown {
			return d, nil
		}
	}
	return DirectionUnknown, errs.NewValueIsInvalidErrorWithCause("direction is invalid",
		fmt.Errorf("%q is not a valid direction", s))
}

// Validate checks if the Direction value is valid.
func (d Direction) Validate() error {
	if d != In && d != Out {
		return errs.NewValueIsInvalidErrorWithCause("direction is invalid",
			fmt.Errorf("%d is not a valid direction", d))
	}
	return nil
}

// String returns the direction label.
func (d Direction) String() string {
	if str, ok := getDirectionStrings()[d]; ok {
		return str
	}
	return "Unknown"
}

// Transaction is an immutable entry in a shift's cash ledger. Entries are
// never modified or deleted; corrections are inverse entries.
type Transaction struct {
	id          kernel.UUID
	shiftID     kernel.UUID
	direction   Direction
	amount      decimal.Decimal
	category    string
	description string
	createdAt   time.Time

	isConstructed bool
}

// NewTransaction records a signed cash movement against an open shift.
// The amount must be strictly positive; the sign is carried by direction.
func NewTransaction(
	id kernel.UUID,
	shiftID kernel.UUID,
	direction Direction,
	amount decimal.Decimal,
	category string,
	description string,
	createdAt time.Time,
) (*Transaction, error) {
	t := &Transaction{
		category:      category,
		description:   description,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setShiftID(shiftID),
		t.setDirection(direction),
		t.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Transaction was created through NewTransaction.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// ShiftID returns the owning shift's identifier.
func (t *Transaction) ShiftID() kernel.UUID {
	return t.shiftID
}

// Direction returns whether money entered or left the drawer.
func (t *Transaction) Direction() Direction {
	return t.direction
}

// Amount returns the unsigned amount; Direction carries the sign.
func (t *Transaction) Amount() decimal.Decimal {
	return t.amount
}

// SignedAmount returns the amount with its direction applied: positive for
// In, negative for Out.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.direction == Out {
		return t.amount.Neg()
	}
	return t.amount
}

// Category returns the bookkeeping category label.
func (t *Transaction) Category() string {
	return t.category
}

// Description returns the free-text note.
func (t *Transaction) Description() string {
	return t.description
}

// CreatedAt returns the recording timestamp.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) setShiftID(shiftID kernel.UUID) error {
	if err := shiftID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shiftID", err)
	}
	t.shiftID = shiftID
	return nil
}

func (t *Transaction) setDirection(direction Direction) error {
	if err := direction.Validate(); err != nil {
		return err
	}
	t.direction = direction
	return nil
}

func (t *Transaction) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	t.amount = amount
	return nil
}
