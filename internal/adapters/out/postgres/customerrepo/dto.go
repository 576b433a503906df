// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. The unique index on tax_id carries the
// no-duplicate-tax-ID rule.
package customerrepo

import (
	"github.com/google/uuid"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/customer"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName     string    `gorm:"not null"`
	LastName      string
	TaxID         string `gorm:"column:tax_id;uniqueIndex;not null"`
	Address       string
	Category      string `gorm:"not null"`
	BusinessName  *string
	SalespersonID *uuid.UUID `gorm:"type:uuid;index"`
	Deleted       bool       `gorm:"index"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(c *customer.Customer) CustomerDTO {
	var salespersonID *uuid.UUID
	if id := c.SalespersonID(); id != nil {
		raw := id.Bytes()
		salespersonID = &raw
	}

	return CustomerDTO{
		ID:            c.ID().Bytes(),
		FirstName:     c.FirstName(),
		LastName:      c.LastName(),
		TaxID:         c.TaxID(),
		Address:       c.Address(),
		Category:      c.Category().String(),
		BusinessName:  c.BusinessName(),
		SalespersonID: salespersonID,
		Deleted:       c.IsDeleted(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var salespersonID *kernel.UUID
	if dto.SalespersonID != nil {
		sID, sErr := kernel.UUIDFromBytes((*dto.SalespersonID)[:])
		if sErr != nil {
			return nil, sErr
		}
		salespersonID = &sID
	}

	category, err := customer.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.FirstName,
		dto.LastName,
		dto.TaxID,
		dto.Address,
		category,
		dto.BusinessName,
		salespersonID,
		dto.Deleted,
	)
}
