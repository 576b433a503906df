package commands

import (
	"errors"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLineIsNotConstructed = errors.New(
		"OrderLine must be created via NewOrderLine constructor",
	)

	// ErrFeeRequiresAdmin is returned when a non-admin caller asks for a
	// non-default fee percentage. The fee is an admin-only field; the check
	// lives at the coordinator boundary because the core must not trust the
	// caller's UI to enforce it.
	ErrFeeRequiresAdmin = errors.New("only an admin may set a fee percentage")
)

// OrderLine is one requested cart line: a product, a quantity and an
// optional per-line price adjustment. Pricing happens later, inside the
// order transaction, against the product's persisted price points.
type OrderLine struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	quantity   int
	adjustment product.Adjustment

	guard guard.ConstructorGuard
}

// NewOrderLine creates a cart line. Quantity must be positive.
func NewOrderLine(productID kernel.UUID, quantity int, adjustment product.Adjustment) (OrderLine, error) {
	line := OrderLine{
		adjustment: adjustment,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// ProductID returns the requested product's identifier.
func (l OrderLine) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the requested unit count.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// Adjustment returns the per-line price override.
func (l OrderLine) Adjustment() product.Adjustment {
	return l.adjustment
}

func (l *OrderLine) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	l.quantity = quantity
	return nil
}

// CreateOrderCommand represents a request to convert a cart into a
// persisted, confirmed order: customer, price tier, lines, optional
// shipping address and an admin-only fee surcharge.
//
// Example:
//
//	line, _ := NewOrderLine(productID, 3, product.NoAdjustment())
//	cmd, err := NewCreateOrderCommand(
//	    orderID, customerID, nil, product.TierFinal,
//	    []OrderLine{line}, "", decimal.Zero, ports.RoleSalesperson,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, resolver, audit)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	salespersonID   *kernel.UUID
	tier            product.PriceTier
	lines           []OrderLine
	shippingAddress string
	feePercent      decimal.Decimal
	actorRole       ports.Role

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that identifiers are valid, lines are non-empty and the fee is
// non-negative, and rejects a non-zero fee from non-admin callers.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	salespersonID *kernel.UUID,
	tier product.PriceTier,
	lines []OrderLine,
	shippingAddress string,
	feePercent decimal.Decimal,
	actorRole ports.Role,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		salespersonID:   salespersonID,
		shippingAddress: shippingAddress,
		actorRole:       actorRole,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setTier(tier),
		cmd.setLines(lines),
		cmd.setFeePercent(feePercent),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// SalespersonID returns the owning salesperson, nil for house orders.
func (c CreateOrderCommand) SalespersonID() *kernel.UUID {
	return c.salespersonID
}

// Tier returns the requested price tier.
func (c CreateOrderCommand) Tier() product.PriceTier {
	return c.tier
}

// Lines returns the requested cart lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

// ShippingAddress returns the delivery address, empty for pickup.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// FeePercent returns the fee surcharge percentage.
func (c CreateOrderCommand) FeePercent() decimal.Decimal {
	return c.feePercent
}

// ActorRole returns the calling user's role.
func (c CreateOrderCommand) ActorRole() ports.Role {
	return c.actorRole
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setTier(tier product.PriceTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	c.tier = tier
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setFeePercent(feePercent decimal.Decimal) error {
	if feePercent.IsNegative() {
		return errs.NewValueIsInvalidError("feePercent")
	}
	if !feePercent.IsZero() && c.actorRole != ports.RoleAdmin {
		return ErrFeeRequiresAdmin
	}
	c.feePercent = feePercent
	return nil
}
