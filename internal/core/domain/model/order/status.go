package order

import (
	"fmt"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the fulfillment workflow.
//
// State transitions:
//
//	Draft ──> Confirmed ──> Preparing ──────┐
//	  │           │  ▲          │           │
//	  │           │  └──────────┼────┐      │
//	  │           │             │    │      │
//	  │           ├─────────────┴──> Delivering ──> Delivered
//	  │           │                  (route assignment; removal
//	  │           │                   returns to Confirmed)
//	  └───────────┴──> Cancelled
//	 (cancellation only from pre-dispatch states)
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Draft is a not-yet-confirmed cart. The creation transaction never
	// persists drafts; the state exists for completeness of the machine.
	Draft

	// Confirmed is the state orders are created in: stock is reserved and
	// the order awaits fulfillment.
	Confirmed

	// Preparing indicates a shipment has been opened for the order.
	Preparing

	// Delivering indicates the order rides on a delivery route.
	Delivering

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal state for aborted orders; reaching it
	// returns all reserved stock.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Draft:         "Draft",
		Confirmed:     "Confirmed",
		Preparing:     "Preparing",
		Delivering:    "Delivering",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "Draft",
		Confirmed:  "Confirmed",
		Preparing:  "Preparing",
		Delivering: "Delivering",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// StartPreparing transitions to Preparing. Triggered by shipment creation.
//
// Valid transitions:
//   - Confirmed -> Preparing
func (s Status) StartPreparing() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to start preparing", s))
	}
	return Preparing, nil
}

// AssignToRoute transitions to Delivering. Triggered by adding the order to
// a delivery route.
//
// Valid transitions:
//   - Confirmed -> Delivering
//   - Preparing -> Delivering
func (s Status) AssignToRoute() (Status, error) {
	if s != Confirmed && s != Preparing {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to assign to a route", s))
	}
	return Delivering, nil
}

// RemoveFromRoute transitions back to Confirmed. Triggered by removing the
// order from its delivery route before delivery.
//
// Valid transitions:
//   - Delivering -> Confirmed
func (s Status) RemoveFromRoute() (Status, error) {
	if s != Delivering {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to remove from a route", s))
	}
	return Confirmed, nil
}

// Deliver transitions to Delivered.
//
// Valid transitions:
//   - Delivering -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != Delivering {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s))
	}
	return Delivered, nil
}

// Cancel transitions to Cancelled. Only pre-dispatch states can be
// cancelled; an order already out for delivery must be removed from its
// route first.
//
// Valid transitions:
//   - Draft -> Cancelled
//   - Confirmed -> Cancelled
//   - Preparing -> Cancelled
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != Confirmed && s != Preparing {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Cancelled, nil
}
