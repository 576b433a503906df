package http

import (
	"time"
)

// Request bodies. Validation tags cover shape only; business rules stay in
// the command constructors and aggregates.

type orderLineRequest struct {
	ProductID       string `json:"productId" validate:"required,uuid"`
	Quantity        int    `json:"quantity" validate:"required,gt=0"`
	AdjustmentType  string `json:"adjustmentType" validate:"omitempty,oneof=NONE FIXED_PRICE PERCENTAGE_OFF PERCENTAGE_MARKUP"`
	AdjustmentValue string `json:"adjustmentValue" validate:"omitempty,numeric"`
}

type createOrderRequest struct {
	CustomerID      string             `json:"customerId" validate:"required,uuid"`
	Tier            string             `json:"tier" validate:"omitempty,oneof=MAYOR MINOR FINAL"`
	ShippingAddress string             `json:"shippingAddress"`
	FeePercent      string             `json:"feePercent" validate:"omitempty,numeric"`
	Items           []orderLineRequest `json:"items" validate:"required,min=1,dive"`
}

type deliverOrderRequest struct {
	Code *string `json:"code"`
}

type createRouteRequest struct {
	Name     string    `json:"name" validate:"required"`
	DriverID *string   `json:"driverId" validate:"omitempty,uuid"`
	Date     time.Time `json:"date" validate:"required"`
	OrderIDs []string  `json:"orderIds" validate:"dive,uuid"`
}

type toggleOrderRouteRequest struct {
	RouteID *string `json:"routeId" validate:"omitempty,uuid"`
}

type createShipmentRequest struct {
	OrderID  string `json:"orderId" validate:"required,uuid"`
	Provider string `json:"provider"`
}

type updateShipmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_TRANSIT DELIVERED"`
}

type openCashShiftRequest struct {
	OpeningAmount string `json:"openingAmount" validate:"required,numeric"`
}

type closeCashShiftRequest struct {
	DeclaredAmount string `json:"declaredAmount" validate:"required,numeric"`
}

type cashTransactionRequest struct {
	Direction   string `json:"direction" validate:"required,oneof=IN OUT"`
	Amount      string `json:"amount" validate:"required,numeric"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type createCustomerRequest struct {
	FirstName    string  `json:"firstName" validate:"required"`
	LastName     string  `json:"lastName"`
	TaxID        string  `json:"taxId" validate:"required"`
	Address      string  `json:"address"`
	Category     string  `json:"category" validate:"required,oneof=FINAL MAYORISTA"`
	BusinessName *string `json:"businessName"`
}

type createProductRequest struct {
	Name             string `json:"name" validate:"required"`
	SKU              string `json:"sku" validate:"required"`
	Category         string `json:"category"`
	WholesalePrice   string `json:"wholesalePrice" validate:"required,numeric"`
	RetailMinorPrice string `json:"retailMinorPrice" validate:"required,numeric"`
	RetailFinalPrice string `json:"retailFinalPrice" validate:"required,numeric"`
	TrackStock       bool   `json:"trackStock"`
	CurrentStock     int    `json:"currentStock" validate:"gte=0"`
	MinStock         int    `json:"minStock" validate:"gte=0"`
}

// Response bodies.

type orderResponse struct {
	ID              string  `json:"id"`
	Number          string  `json:"number"`
	Status          string  `json:"status"`
	ShippingAddress string  `json:"shippingAddress"`
	Subtotal        string  `json:"subtotal"`
	Total           string  `json:"total"`
	DeliveryCode    *string `json:"deliveryCode,omitempty"`
}

type undeliveredOrderResponse struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Status    string    `json:"status"`
	Total     string    `json:"total"`
	RouteID   *string   `json:"routeId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type shipmentResponse struct {
	ID           string `json:"id"`
	OrderID      string `json:"orderId"`
	TrackingCode string `json:"trackingCode"`
	Provider     string `json:"provider"`
	Status       string `json:"status"`
}

type lowStockProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	CurrentStock int    `json:"currentStock"`
	MinStock     int    `json:"minStock"`
}

type openCashShiftResponse struct {
	ID            string    `json:"id"`
	OpenedBy      string    `json:"openedBy"`
	OpeningAmount string    `json:"openingAmount"`
	SystemAmount  string    `json:"systemAmount"`
	OpenedAt      time.Time `json:"openedAt"`
}

type createdResponse struct {
	ID string `json:"id"`
}
