// Package route provides the delivery-route aggregate: a named group of
// orders delivered together on a given date, with a Pending/Completed
// lifecycle. Completing a route bulk-delivers every order still on it.
package route

import (
	"errors"
	"fmt"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
)

// ErrRouteIsNotConstructed is returned when a Route instance was not created
// through the NewRoute/RestoreRoute factory methods.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

// Status represents the lifecycle state of a delivery route.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending is the initial status: the route is planned or in progress.
	Pending

	// Completed is terminal: the driver finished the route and every order
	// on it was delivered.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "PENDING",
		Completed:     "COMPLETED",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Pending && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid route status", s))
	}
	return nil
}

// String returns the route status label.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Route is the delivery-route aggregate. Orders reference the route via
// their routeID; the route itself only carries identity, driver and status.
type Route struct {
	id       kernel.UUID
	name     string
	driverID *kernel.UUID
	date     time.Time
	status   Status

	isConstructed bool
}

// NewRoute creates a pending route. The driver is optional.
func NewRoute(id kernel.UUID, name string, driverID *kernel.UUID, date time.Time) (*Route, error) {
	r := &Route{
		driverID:      driverID,
		date:          date,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a Route from persistence.
func RestoreRoute(id kernel.UUID, name string, driverID *kernel.UUID, date time.Time, status Status) (*Route, error) {
	r, err := NewRoute(id, name, driverID, date)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	r.status = status
	return r, nil
}

// Validate ensures the Route was created through a constructor.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// Name returns the route's display name or number.
func (r *Route) Name() string {
	return r.name
}

// DriverID returns the assigned driver, nil when unassigned.
func (r *Route) DriverID() *kernel.UUID {
	return r.driverID
}

// Date returns the planned delivery date.
func (r *Route) Date() time.Time {
	return r.date
}

// Status returns the current route status.
func (r *Route) Status() Status {
	return r.status
}

// Complete marks the route as finished. Only pending routes can complete;
// the caller must bulk-deliver the route's orders in the same transaction.
func (r *Route) Complete() error {
	if r.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to complete", r.status))
	}
	r.status = Completed
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}
