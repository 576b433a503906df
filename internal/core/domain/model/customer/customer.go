// Package customer provides the customer aggregate. Tax IDs are unique
// system-wide (storage-enforced) and wholesale customers must carry a
// business name.
package customer

import (
	"errors"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was
	// not created through the NewCustomer/RestoreCustomer factory methods.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrDuplicateTaxID is returned when registering a customer whose tax ID
	// already exists. Backed by a unique constraint on taxId.
	ErrDuplicateTaxID = errors.New("a customer with this tax ID already exists")
)

// Category classifies a customer for pricing and rules purposes.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// Final is an end-consumer customer.
	Final

	// Mayorista is a wholesale customer; requires a business name.
	Mayorista
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown: "Unknown",
		Final:           "FINAL",
		Mayorista:       "MAYORISTA",
	}
}

// CategoryFromString parses a category label ("FINAL" or "MAYORISTA").
func CategoryFromString(s string) (Category, error) {
	for c, str := range getCategoryStrings() {
		if str == s && c != CategoryUnknown {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidError("category")
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if c != Final && c != Mayorista {
		return errs.NewValueIsInvalidError("category")
	}
	return nil
}

// String returns the category label.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// Customer is the client aggregate. A nil salespersonID means the customer
// is house/admin-owned.
type Customer struct {
	id            kernel.UUID
	firstName     string
	lastName      string
	taxID         string
	address       string
	category      Category
	businessName  *string
	salespersonID *kernel.UUID
	deleted       bool

	isConstructed bool
}

// NewCustomer creates a customer with validation. Wholesale (Mayorista)
// customers must supply a business name.
func NewCustomer(
	id kernel.UUID,
	firstName string,
	lastName string,
	taxID string,
	address string,
	category Category,
	businessName *string,
	salespersonID *kernel.UUID,
) (*Customer, error) {
	c := &Customer{
		address:       address,
		businessName:  businessName,
		salespersonID: salespersonID,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setNames(firstName, lastName),
		c.setTaxID(taxID),
		c.setCategory(category),
	); err != nil {
		return nil, err
	}

	if c.category == Mayorista && (businessName == nil || *businessName == "") {
		return nil, errs.NewValueIsRequiredError("businessName")
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(
	id kernel.UUID,
	firstName string,
	lastName string,
	taxID string,
	address string,
	category Category,
	businessName *string,
	salespersonID *kernel.UUID,
	deleted bool,
) (*Customer, error) {
	c, err := NewCustomer(id, firstName, lastName, taxID, address, category, businessName, salespersonID)
	if err != nil {
		return nil, err
	}
	c.deleted = deleted
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// TaxID returns the unique tax identifier.
func (c *Customer) TaxID() string {
	return c.taxID
}

// Address returns the customer's address.
func (c *Customer) Address() string {
	return c.address
}

// Category returns the customer classification.
func (c *Customer) Category() Category {
	return c.category
}

// BusinessName returns the business name, nil for end consumers.
func (c *Customer) BusinessName() *string {
	return c.businessName
}

// SalespersonID returns the owning salesperson, nil for house accounts.
func (c *Customer) SalespersonID() *kernel.UUID {
	return c.salespersonID
}

// IsDeleted reports the soft-delete flag.
func (c *Customer) IsDeleted() bool {
	return c.deleted
}

// IsWholesale reports whether the customer buys at the wholesale tier.
func (c *Customer) IsWholesale() bool {
	return c.category == Mayorista
}

// Delete marks the customer as soft-deleted.
func (c *Customer) Delete() {
	c.deleted = true
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setNames(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *Customer) setTaxID(taxID string) error {
	if taxID == "" {
		return errs.NewValueIsRequiredError("taxID")
	}
	c.taxID = taxID
	return nil
}

func (c *Customer) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}
