// Package cashshift provides the cash-accounting aggregates: a shift bounded
// by an opening and a closing count, and the immutable signed transactions
// recorded against it. The business rule that at most one shift is OPEN
// system-wide is enforced by a storage-level uniqueness constraint, not by
// in-process state.
package cashshift

import (
	"errors"
	"fmt"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrShiftIsNotConstructed is returned when a Shift instance was not
	// created through the NewShift/RestoreShift factory methods.
	ErrShiftIsNotConstructed = errors.New("Shift must be created via NewShift constructor")

	// ErrShiftAlreadyOpen is returned when opening a shift while another one
	// is still OPEN. Backed by a partial unique index; no row is mutated.
	ErrShiftAlreadyOpen = errors.New("a cash shift is already open")

	// ErrNoOpenShift is returned when an operation needs the open shift and
	// none exists.
	ErrNoOpenShift = errors.New("no cash shift is open")

	// ErrShiftAlreadyClosed is returned when closing or recording against a
	// shift that is not OPEN.
	ErrShiftAlreadyClosed = errors.New("cash shift is already closed")
)

// Status represents the shift lifecycle: OPEN until reconciled, then CLOSED.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Open is the working state; transactions attach only to open shifts.
	Open

	// Closed is terminal; the shift has been counted and reconciled.
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Open:          "OPEN",
		Closed:        "CLOSED",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Open && s != Closed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid shift status", s))
	}
	return nil
}

// String returns the shift status label.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Shift is a bounded cash-accounting period. On close it records the
// declared closing amount against the system-computed amount
// (opening + inflows − outflows) and the resulting variance.
type Shift struct {
	id            kernel.UUID
	openedBy      kernel.UUID
	openingAmount decimal.Decimal
	status        Status
	openedAt      time.Time
	closedAt      *time.Time
	closingAmount *decimal.Decimal
	systemAmount  *decimal.Decimal
	variance      *decimal.Decimal

	isConstructed bool
}

// NewShift opens a cash shift with the counted opening amount.
func NewShift(id kernel.UUID, openedBy kernel.UUID, openingAmount decimal.Decimal, openedAt time.Time) (*Shift, error) {
	s := &Shift{
		openingAmount: openingAmount,
		status:        Open,
		openedAt:      openedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOpenedBy(openedBy),
	); err != nil {
		return nil, err
	}

	if openingAmount.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("openingAmount",
			fmt.Errorf("%s is negative", openingAmount))
	}

	return s, nil
}

// RestoreShift reconstructs a Shift from persistence.
func RestoreShift(
	id kernel.UUID,
	openedBy kernel.UUID,
	openingAmount decimal.Decimal,
	status Status,
	openedAt time.Time,
	closedAt *time.Time,
	closingAmount *decimal.Decimal,
	systemAmount *decimal.Decimal,
	variance *decimal.Decimal,
) (*Shift, error) {
	s, err := NewShift(id, openedBy, openingAmount, openedAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	s.status = status
	s.closedAt = closedAt
	s.closingAmount = closingAmount
	s.systemAmount = systemAmount
	s.variance = variance
	return s, nil
}

// Validate ensures the Shift was created through a constructor.
func (s *Shift) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShiftIsNotConstructed
	}
	return nil
}

// ID returns the shift's unique identifier.
func (s *Shift) ID() kernel.UUID {
	return s.id
}

// OpenedBy returns the user who opened the shift.
func (s *Shift) OpenedBy() kernel.UUID {
	return s.openedBy
}

// OpeningAmount returns the counted cash at open.
func (s *Shift) OpeningAmount() decimal.Decimal {
	return s.openingAmount
}

// Status returns the current shift status.
func (s *Shift) Status() Status {
	return s.status
}

// OpenedAt returns the opening timestamp.
func (s *Shift) OpenedAt() time.Time {
	return s.openedAt
}

// ClosedAt returns the closing timestamp, nil while open.
func (s *Shift) ClosedAt() *time.Time {
	return s.closedAt
}

// ClosingAmount returns the declared cash at close, nil while open.
func (s *Shift) ClosingAmount() *decimal.Decimal {
	return s.closingAmount
}

// SystemAmount returns the computed expected cash at close, nil while open.
func (s *Shift) SystemAmount() *decimal.Decimal {
	return s.systemAmount
}

// Variance returns declared minus expected, nil while open.
func (s *Shift) Variance() *decimal.Decimal {
	return s.variance
}

// Close reconciles the shift: systemAmount is the opening amount plus the
// signed sum of the shift's transactions, variance is declared − system.
func (s *Shift) Close(declaredAmount, systemAmount decimal.Decimal, closedAt time.Time) error {
	if s.status != Open {
		return ErrShiftAlreadyClosed
	}
	if declaredAmount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("declaredAmount",
			fmt.Errorf("%s is negative", declaredAmount))
	}

	variance := declaredAmount.Sub(systemAmount)
	s.status = Closed
	s.closedAt = &closedAt
	s.closingAmount = &declaredAmount
	s.systemAmount = &systemAmount
	s.variance = &variance
	return nil
}

func (s *Shift) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shift) setOpenedBy(openedBy kernel.UUID) error {
	if err := openedBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("openedBy", err)
	}
	s.openedBy = openedBy
	return nil
}
