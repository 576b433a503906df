package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder/RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvalidDeliveryCode is returned when delivery confirmation presents
	// a code that does not exactly match the stored one. The transition is
	// aborted and no state changes.
	ErrInvalidDeliveryCode = errors.New("invalid delivery code")
)

// PickupAddress is the sentinel shipping address used when an order has no
// delivery address: the customer collects it at the store.
const PickupAddress = "Retiro en local"

// numberPrefix is the human-readable prefix on order numbers.
const numberPrefix = "PED"

// FormatNumber renders a sequence value as a display order number,
// e.g. FormatNumber(482913) == "PED-482913". Uniqueness comes from the
// storage-generated sequence, not from this formatting.
func FormatNumber(seq int64) string {
	return fmt.Sprintf("%s-%06d", numberPrefix, seq)
}

// NewDeliveryCode generates a 4-digit delivery confirmation code in the
// range 1000–9999. The recipient must present it to confirm receipt of a
// route-assigned order.
func NewDeliveryCode() string {
	return fmt.Sprintf("%d", rand.IntN(9000)+1000) //nolint:gosec // short-lived shared secret, not a key
}

// Order is the aggregate root of the fulfillment engine. It is created
// atomically with its line items and the stock reservations that back them,
// then moves through the lifecycle governed by Status.
//
// Invariants:
//   - Must have a valid identifier, order number and customer reference
//   - Items are non-empty and immutable after construction
//   - Subtotal is the sum of item subtotals; total adds the fee surcharge
//   - Status transitions follow the state machine in status.go
//   - requiresCode and the stored delivery code are set exactly while the
//     order rides on a route
//   - Orders are never hard-deleted; cancellation is a status transition
type Order struct {
	id              kernel.UUID
	number          string
	customerID      kernel.UUID
	salespersonID   *kernel.UUID
	tier            product.PriceTier
	shippingAddress string
	items           []Item
	subtotal        decimal.Decimal
	feePercent      decimal.Decimal
	total           decimal.Decimal
	status          Status
	routeID         *kernel.UUID
	deliveryCode    *string
	requiresCode    bool
	deliveredAt     *time.Time
	createdAt       time.Time

	isConstructed bool
}

// NewOrder creates a confirmed order from resolved line items.
//
// The shipping address defaults to the PickupAddress sentinel when empty.
// Subtotal and total are derived: total = subtotal × (1 + feePercent/100).
// The caller is responsible for having reserved stock for every item inside
// the same transaction that persists the order.
func NewOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	salespersonID *kernel.UUID,
	tier product.PriceTier,
	shippingAddress string,
	items []Item,
	feePercent decimal.Decimal,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		tier:          tier,
		salespersonID: salespersonID,
		status:        Confirmed,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setShippingAddress(shippingAddress),
		o.setItems(items),
		o.setFeePercent(feePercent),
	); err != nil {
		return nil, err
	}

	o.computeTotals()
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its full
// lifecycle state. Validation mirrors NewOrder plus status/route/code
// consistency checks.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	salespersonID *kernel.UUID,
	tier product.PriceTier,
	shippingAddress string,
	items []Item,
	feePercent decimal.Decimal,
	status Status,
	routeID *kernel.UUID,
	deliveryCode *string,
	requiresCode bool,
	deliveredAt *time.Time,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, number, customerID, salespersonID, tier, shippingAddress, items, feePercent, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.routeID = routeID
	o.deliveryCode = deliveryCode
	o.requiresCode = requiresCode
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// SalespersonID returns the owning salesperson, nil for house/admin orders.
func (o *Order) SalespersonID() *kernel.UUID {
	return o.salespersonID
}

// Tier returns the price tier applied to the order's lines.
func (o *Order) Tier() product.PriceTier {
	return o.tier
}

// ShippingAddress returns the delivery address, or PickupAddress.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// Items returns the order's immutable line items.
func (o *Order) Items() []Item {
	return o.items
}

// Subtotal returns the sum of line subtotals.
func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

// FeePercent returns the commission/fee surcharge percentage.
func (o *Order) FeePercent() decimal.Decimal {
	return o.feePercent
}

// Total returns subtotal plus the fee surcharge.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// RouteID returns the assigned delivery route, nil when not routed.
func (o *Order) RouteID() *kernel.UUID {
	return o.routeID
}

// DeliveryCode returns the stored confirmation code, nil when none issued.
func (o *Order) DeliveryCode() *string {
	return o.deliveryCode
}

// RequiresCode reports whether delivery confirmation must present a code.
func (o *Order) RequiresCode() bool {
	return o.requiresCode
}

// DeliveredAt returns the delivery timestamp, nil until delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartPreparing moves the order to Preparing. Triggered by shipment creation.
func (o *Order) StartPreparing() error {
	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// AssignToRoute puts the order on a delivery route and issues the delivery
// code the recipient must present. Valid from Confirmed or Preparing.
func (o *Order) AssignToRoute(routeID kernel.UUID, deliveryCode string) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	if deliveryCode == "" {
		return errs.NewValueIsRequiredError("deliveryCode")
	}

	newStatus, err := o.status.AssignToRoute()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.routeID = &routeID
	o.deliveryCode = &deliveryCode
	o.requiresCode = true
	return nil
}

// RemoveFromRoute takes the order off its route and reverses the code
// requirement, returning it to Confirmed.
func (o *Order) RemoveFromRoute() error {
	newStatus, err := o.status.RemoveFromRoute()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.routeID = nil
	o.deliveryCode = nil
	o.requiresCode = false
	return nil
}

// Deliver confirms delivery to the recipient. When requiresCode is set the
// supplied code must exactly match the stored one; any mismatch returns
// ErrInvalidDeliveryCode and leaves the order unchanged.
func (o *Order) Deliver(code *string, deliveredAt time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if o.requiresCode {
		if code == nil || o.deliveryCode == nil || *code != *o.deliveryCode {
			return ErrInvalidDeliveryCode
		}
	}

	o.status = newStatus
	o.deliveredAt = &deliveredAt
	return nil
}

// MarkDelivered records delivery without the code gate. Used by route
// completion, where the driver closing the route is the confirmation for
// every order still on it.
func (o *Order) MarkDelivered(deliveredAt time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &deliveredAt
	return nil
}

// Cancel aborts a pre-dispatch order. The caller must release the stock of
// every line item within the same transaction as the status flip; this is
// the only path that returns reserved stock to inventory.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) computeTotals() {
	subtotal := decimal.Zero
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	o.subtotal = subtotal

	fee := subtotal.Mul(o.feePercent).Div(decimal.NewFromInt(100))
	o.total = subtotal.Add(fee)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		shippingAddress = PickupAddress
	}
	o.shippingAddress = shippingAddress
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setFeePercent(feePercent decimal.Decimal) error {
	if feePercent.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("feePercent",
			fmt.Errorf("%s is negative", feePercent))
	}
	o.feePercent = feePercent
	return nil
}
