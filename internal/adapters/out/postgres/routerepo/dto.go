// Package routerepo provides data transfer objects and mapping functions for
// delivery-route persistence.
package routerepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/route"
)

// RouteDTO represents the database structure for persisting routes.
type RouteDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name     string     `gorm:"not null"`
	DriverID *uuid.UUID `gorm:"type:uuid;index"`
	Date     time.Time
	Status   int `gorm:"index"`
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// fromDomain converts a route domain aggregate to its database representation.
func fromDomain(r *route.Route) RouteDTO {
	var driverID *uuid.UUID
	if id := r.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return RouteDTO{
		ID:       r.ID().Bytes(),
		Name:     r.Name(),
		DriverID: driverID,
		Date:     r.Date(),
		Status:   int(r.Status()),
	}
}

// toDomain converts a database DTO to a route domain aggregate.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, dErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if dErr != nil {
			return nil, dErr
		}
		driverID = &dID
	}

	return route.RestoreRoute(id, dto.Name, driverID, dto.Date, route.Status(dto.Status))
}
