// Package shipment provides the courier-style fulfillment aggregate: an
// independent shipment record with at most one instance per order, a
// generated tracking code, and its own status track separate from the
// in-house delivery routes.
package shipment

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment/RestoreShipment factory methods.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// DefaultProvider is the courier label used when the caller does not name one.
const DefaultProvider = "Correo Argentino"

// Status represents the shipment's courier-side state. Unlike the legacy
// free-text overwrite, updates only accept these values.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending is the initial status after shipment creation.
	Pending

	// InTransit indicates the courier picked the parcel up.
	InTransit

	// Delivered indicates the courier confirmed delivery.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "PENDING",
		InTransit:     "IN_TRANSIT",
		Delivered:     "DELIVERED",
	}
}

// StatusFromString parses a shipment status label.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("shipment status is invalid",
		fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Pending && s != InTransit && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("shipment status is invalid",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the shipment status label.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// NewTrackingCode generates a tracking code in the legacy wire format:
// "CP" + last 8 digits of epoch-millis + 2 random digits + "AR".
// It is a display identifier, not externally verified and not
// collision-proof; uniqueness of shipments is carried by the one-per-order
// constraint, not by this code.
func NewTrackingCode(now time.Time) string {
	millis := now.UnixMilli() % 100000000
	return fmt.Sprintf("CP%08d%02dAR", millis, rand.IntN(100)) //nolint:gosec // display code, not a secret
}

// Shipment is the courier fulfillment aggregate. One-to-one with an order;
// the storage layer enforces at-most-one via a unique constraint on orderID.
type Shipment struct {
	id           kernel.UUID
	orderID      kernel.UUID
	trackingCode string
	provider     string
	status       Status
	createdAt    time.Time

	isConstructed bool
}

// NewShipment creates a pending shipment for an order, generating its
// tracking code. An empty provider falls back to DefaultProvider.
func NewShipment(id kernel.UUID, orderID kernel.UUID, provider string, createdAt time.Time) (*Shipment, error) {
	if provider == "" {
		provider = DefaultProvider
	}

	s := &Shipment{
		trackingCode:  NewTrackingCode(createdAt),
		provider:      provider,
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	trackingCode string,
	provider string,
	status Status,
	createdAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(id, orderID, provider, createdAt)
	if err != nil {
		return nil, err
	}
	if trackingCode == "" {
		return nil, errs.NewValueIsRequiredError("trackingCode")
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	s.trackingCode = trackingCode
	s.status = status
	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the fulfilled order's identifier.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// TrackingCode returns the generated tracking code.
func (s *Shipment) TrackingCode() string {
	return s.trackingCode
}

// Provider returns the courier label.
func (s *Shipment) Provider() string {
	return s.provider
}

// Status returns the courier-side status.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdateStatus overwrites the courier-side status with a validated value.
func (s *Shipment) UpdateStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	s.orderID = orderID
	return nil
}
