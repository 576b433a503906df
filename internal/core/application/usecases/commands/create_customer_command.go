package commands

import (
	"errors"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/customer"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a new customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	firstName     string
	lastName      string
	taxID         string
	address       string
	category      customer.Category
	businessName  *string
	salespersonID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Field rules live on the aggregate; the command only checks identifiers.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	firstName string,
	lastName string,
	taxID string,
	address string,
	category customer.Category,
	businessName *string,
	salespersonID *kernel.UUID,
) (CreateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateCustomerCommand{}, err
	}
	if salespersonID != nil {
		if err := salespersonID.Validate(); err != nil {
			return CreateCustomerCommand{}, err
		}
	}
	return CreateCustomerCommand{
		customerID:    customerID,
		firstName:     firstName,
		lastName:      lastName,
		taxID:         taxID,
		address:       address,
		category:      category,
		businessName:  businessName,
		salespersonID: salespersonID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier the new customer will carry.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FirstName returns the customer's first name.
func (c CreateCustomerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c CreateCustomerCommand) LastName() string {
	return c.lastName
}

// TaxID returns the unique tax identifier.
func (c CreateCustomerCommand) TaxID() string {
	return c.taxID
}

// Address returns the customer's address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

// Category returns the customer classification.
func (c CreateCustomerCommand) Category() customer.Category {
	return c.category
}

// BusinessName returns the business name, nil for end consumers.
func (c CreateCustomerCommand) BusinessName() *string {
	return c.businessName
}

// SalespersonID returns the owning salesperson, nil for house accounts.
func (c CreateCustomerCommand) SalespersonID() *kernel.UUID {
	return c.salespersonID
}
