// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The unique index on order_id is what enforces
// the one-shipment-per-order rule under concurrency.
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipments.
type ShipmentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	TrackingCode string    `gorm:"not null"`
	Provider     string
	Status       string `gorm:"index"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:           s.ID().Bytes(),
		OrderID:      s.OrderID().Bytes(),
		TrackingCode: s.TrackingCode(),
		Provider:     s.Provider(),
		Status:       s.Status().String(),
		CreatedAt:    s.CreatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, orderID, dto.TrackingCode, dto.Provider, status, dto.CreatedAt)
}
