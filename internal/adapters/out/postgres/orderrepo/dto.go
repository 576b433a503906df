// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders persist together with their line items; items are
// written once at creation and never updated afterwards.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/order"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number          string     `gorm:"uniqueIndex;not null"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index;not null"`
	SalespersonID   *uuid.UUID `gorm:"type:uuid;index"`
	Tier            string
	ShippingAddress string
	Subtotal        decimal.Decimal `gorm:"type:numeric(14,2)"`
	FeePercent      decimal.Decimal `gorm:"type:numeric(6,2)"`
	Total           decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status          int             `gorm:"index"`
	RouteID         *uuid.UUID      `gorm:"type:uuid;index"`
	DeliveryCode    *string
	RequiresCode    bool
	DeliveredAt     *time.Time
	CreatedAt       time.Time
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line with its pricing trail.
type OrderItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID       uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductName     string    `gorm:"not null"`
	Quantity        int
	Tier            string
	BasePrice       decimal.Decimal `gorm:"type:numeric(12,2)"`
	AdjustmentType  string
	AdjustmentValue decimal.Decimal `gorm:"type:numeric(12,2)"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var salespersonID *uuid.UUID
	if id := o.SalespersonID(); id != nil {
		raw := id.Bytes()
		salespersonID = &raw
	}

	var routeID *uuid.UUID
	if id := o.RouteID(); id != nil {
		raw := id.Bytes()
		routeID = &raw
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:              uuid.New(),
			OrderID:         o.ID().Bytes(),
			ProductID:       item.ProductID().Bytes(),
			ProductName:     item.ProductName(),
			Quantity:        item.Quantity(),
			Tier:            item.Tier().String(),
			BasePrice:       item.BasePrice(),
			AdjustmentType:  item.Adjustment().Type().String(),
			AdjustmentValue: item.Adjustment().Value(),
			UnitPrice:       item.UnitPrice(),
			Subtotal:        item.Subtotal(),
		})
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		Number:          o.Number(),
		CustomerID:      o.CustomerID().Bytes(),
		SalespersonID:   salespersonID,
		Tier:            o.Tier().String(),
		ShippingAddress: o.ShippingAddress(),
		Subtotal:        o.Subtotal(),
		FeePercent:      o.FeePercent(),
		Total:           o.Total(),
		Status:          int(o.Status()),
		RouteID:         routeID,
		DeliveryCode:    o.DeliveryCode(),
		RequiresCode:    o.RequiresCode(),
		DeliveredAt:     o.DeliveredAt(),
		CreatedAt:       o.CreatedAt(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
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

	var routeID *kernel.UUID
	if dto.RouteID != nil {
		rID, rErr := kernel.UUIDFromBytes((*dto.RouteID)[:])
		if rErr != nil {
			return nil, rErr
		}
		routeID = &rID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		customerID,
		salespersonID,
		product.PriceTierFromString(dto.Tier),
		dto.ShippingAddress,
		items,
		dto.FeePercent,
		order.Status(dto.Status),
		routeID,
		dto.DeliveryCode,
		dto.RequiresCode,
		dto.DeliveredAt,
		dto.CreatedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	adjustment, err := product.NewAdjustment(
		product.AdjustmentTypeFromString(dto.AdjustmentType),
		dto.AdjustmentValue,
	)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(
		productID,
		dto.ProductName,
		dto.Quantity,
		product.PriceTierFromString(dto.Tier),
		dto.BasePrice,
		adjustment,
		dto.UnitPrice,
	)
}
