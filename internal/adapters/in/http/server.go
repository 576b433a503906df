// Package http exposes the application over a JSON API. Handlers translate
// requests into commands and queries; identity arrives in the X-User-Id and
// X-User-Role headers set by the gateway in front of this service.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/application/usecases/commands"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/application/usecases/queries"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/cashshift"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/customer"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/shipment"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	deliverOrderHandler         commands.DeliverOrderCommandHandler
	createRouteHandler          commands.CreateRouteCommandHandler
	toggleOrderInRouteHandler   commands.ToggleOrderInRouteCommandHandler
	completeRouteHandler        commands.CompleteRouteCommandHandler
	createShipmentHandler       commands.CreateShipmentCommandHandler
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler
	openCashShiftHandler        commands.OpenCashShiftCommandHandler
	closeCashShiftHandler       commands.CloseCashShiftCommandHandler
	registerCashTxHandler       commands.RegisterCashTransactionCommandHandler
	createCustomerHandler       commands.CreateCustomerCommandHandler
	addProductHandler           commands.AddProductCommandHandler

	// Query handlers
	getUndeliveredOrdersHandler queries.GetUndeliveredOrdersQueryHandler
	getLowStockProductsHandler  queries.GetLowStockProductsQueryHandler
	getOpenCashShiftHandler     queries.GetOpenCashShiftQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	createRouteHandler commands.CreateRouteCommandHandler,
	toggleOrderInRouteHandler commands.ToggleOrderInRouteCommandHandler,
	completeRouteHandler commands.CompleteRouteCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler,
	openCashShiftHandler commands.OpenCashShiftCommandHandler,
	closeCashShiftHandler commands.CloseCashShiftCommandHandler,
	registerCashTxHandler commands.RegisterCashTransactionCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	addProductHandler commands.AddProductCommandHandler,
	getUndeliveredOrdersHandler queries.GetUndeliveredOrdersQueryHandler,
	getLowStockProductsHandler queries.GetLowStockProductsQueryHandler,
	getOpenCashShiftHandler queries.GetOpenCashShiftQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		deliverOrderHandler:         deliverOrderHandler,
		createRouteHandler:          createRouteHandler,
		toggleOrderInRouteHandler:   toggleOrderInRouteHandler,
		completeRouteHandler:        completeRouteHandler,
		createShipmentHandler:       createShipmentHandler,
		updateShipmentStatusHandler: updateShipmentStatusHandler,
		openCashShiftHandler:        openCashShiftHandler,
		closeCashShiftHandler:       closeCashShiftHandler,
		registerCashTxHandler:       registerCashTxHandler,
		createCustomerHandler:       createCustomerHandler,
		addProductHandler:           addProductHandler,
		getUndeliveredOrdersHandler: getUndeliveredOrdersHandler,
		getLowStockProductsHandler:  getLowStockProductsHandler,
		getOpenCashShiftHandler:     getOpenCashShiftHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetUndeliveredOrders)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.PUT("/orders/:id/route", s.ToggleOrderInRoute)

	api.POST("/routes", s.CreateRoute)
	api.POST("/routes/:id/complete", s.CompleteRoute)

	api.POST("/shipments", s.CreateShipment)
	api.PUT("/shipments/:id/status", s.UpdateShipmentStatus)

	api.POST("/cash-shifts", s.OpenCashShift)
	api.POST("/cash-shifts/close", s.CloseCashShift)
	api.GET("/cash-shifts/open", s.GetOpenCashShift)
	api.POST("/cash-transactions", s.RegisterCashTransaction)

	api.POST("/customers", s.CreateCustomer)

	api.POST("/products", s.CreateProduct)
	api.GET("/products/low-stock", s.GetLowStockProducts)
}

// actor reads the caller's identity from the gateway headers.
func actor(ctx echo.Context) (ports.Role, *kernel.UUID) {
	role := ports.RoleFromString(ctx.Request().Header.Get("X-User-Role"))

	var userID *kernel.UUID
	if raw := ctx.Request().Header.Get("X-User-Id"); raw != "" {
		if id, err := kernel.UUIDFromString(raw); err == nil {
			userID = &id
		}
	}

	return role, userID
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	feePercent, err := parseDecimal(req.FeePercent)
	if err != nil {
		return badRequest(ctx, "Invalid fee percent")
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, pErr := kernel.UUIDFromString(item.ProductID)
		if pErr != nil {
			return badRequest(ctx, "Invalid product id")
		}

		adjValue, pErr := parseDecimal(item.AdjustmentValue)
		if pErr != nil {
			return badRequest(ctx, "Invalid adjustment value")
		}

		adjustment, pErr := product.NewAdjustment(product.AdjustmentTypeFromString(item.AdjustmentType), adjValue)
		if pErr != nil {
			return respondError(ctx, pErr)
		}

		line, pErr := commands.NewOrderLine(productID, item.Quantity, adjustment)
		if pErr != nil {
			return respondError(ctx, pErr)
		}
		lines = append(lines, line)
	}

	role, userID := actor(ctx)

	var salespersonID *kernel.UUID
	if role == ports.RoleSalesperson {
		salespersonID = userID
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customerID,
		salespersonID,
		product.PriceTierFromString(req.Tier),
		lines,
		req.ShippingAddress,
		feePercent,
		role,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse{
		ID:              o.ID().String(),
		Number:          o.Number(),
		Status:          o.Status().String(),
		ShippingAddress: o.ShippingAddress(),
		Subtotal:        o.Subtotal().String(),
		Total:           o.Total().String(),
	})
}

// GetUndeliveredOrders handles GET /api/v1/orders/active.
func (s *Server) GetUndeliveredOrders(ctx echo.Context) error {
	orders, err := s.getUndeliveredOrdersHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetUndeliveredOrdersQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]undeliveredOrderResponse, len(orders))
	for i, o := range orders {
		var routeID *string
		if o.RouteID != nil {
			raw := o.RouteID.String()
			routeID = &raw
		}

		response[i] = undeliveredOrderResponse{
			ID:        o.ID.String(),
			Number:    o.Number,
			Status:    o.Status,
			Total:     o.Total.String(),
			RouteID:   routeID,
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req deliverOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, req.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ToggleOrderInRoute handles PUT /api/v1/orders/:id/route.
func (s *Server) ToggleOrderInRoute(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req toggleOrderRouteRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	var routeID *kernel.UUID
	if req.RouteID != nil {
		id, rErr := kernel.UUIDFromString(*req.RouteID)
		if rErr != nil {
			return badRequest(ctx, "Invalid route id")
		}
		routeID = &id
	}

	cmd, err := commands.NewToggleOrderInRouteCommand(orderID, routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.toggleOrderInRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var req createRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	var driverID *kernel.UUID
	if req.DriverID != nil {
		id, err := kernel.UUIDFromString(*req.DriverID)
		if err != nil {
			return badRequest(ctx, "Invalid driver id")
		}
		driverID = &id
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid order id")
		}
		orderIDs = append(orderIDs, id)
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(routeID, req.Name, driverID, req.Date, orderIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: routeID.String()})
}

// CompleteRoute handles POST /api/v1/routes/:id/complete.
func (s *Server) CompleteRoute(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid route id")
	}

	cmd, err := commands.NewCompleteRouteCommand(routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateShipment handles POST /api/v1/shipments. Repeating the request for
// the same order returns the existing shipment with 200 instead of 201.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req createShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, orderID, req.Provider)
	if err != nil {
		return respondError(ctx, err)
	}

	sh, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	status := http.StatusCreated
	if !sh.ID().IsEqual(shipmentID) {
		status = http.StatusOK
	}

	return ctx.JSON(status, shipmentResponse{
		ID:           sh.ID().String(),
		OrderID:      sh.OrderID().String(),
		TrackingCode: sh.TrackingCode(),
		Provider:     sh.Provider(),
		Status:       sh.Status().String(),
	})
}

// UpdateShipmentStatus handles PUT /api/v1/shipments/:id/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req updateShipmentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	status, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OpenCashShift handles POST /api/v1/cash-shifts.
func (s *Server) OpenCashShift(ctx echo.Context) error {
	var req openCashShiftRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	openingAmount, err := parseDecimal(req.OpeningAmount)
	if err != nil {
		return badRequest(ctx, "Invalid opening amount")
	}

	_, userID := actor(ctx)
	if userID == nil {
		return badRequest(ctx, "Missing X-User-Id header")
	}

	shiftID := kernel.NewUUID()
	cmd, err := commands.NewOpenCashShiftCommand(shiftID, *userID, openingAmount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.openCashShiftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: shiftID.String()})
}

// CloseCashShift handles POST /api/v1/cash-shifts/close.
func (s *Server) CloseCashShift(ctx echo.Context) error {
	var req closeCashShiftRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	declaredAmount, err := parseDecimal(req.DeclaredAmount)
	if err != nil {
		return badRequest(ctx, "Invalid declared amount")
	}

	cmd, err := commands.NewCloseCashShiftCommand(declaredAmount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.closeCashShiftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOpenCashShift handles GET /api/v1/cash-shifts/open.
func (s *Server) GetOpenCashShift(ctx echo.Context) error {
	shift, err := s.getOpenCashShiftHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetOpenCashShiftQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, openCashShiftResponse{
		ID:            shift.ID.String(),
		OpenedBy:      shift.OpenedBy.String(),
		OpeningAmount: shift.OpeningAmount.String(),
		SystemAmount:  shift.SystemAmount.String(),
		OpenedAt:      shift.OpenedAt,
	})
}

// RegisterCashTransaction handles POST /api/v1/cash-transactions.
func (s *Server) RegisterCashTransaction(ctx echo.Context) error {
	var req cashTransactionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	amount, err := parseDecimal(req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount")
	}

	direction, err := cashshift.DirectionFromString(req.Direction)
	if err != nil {
		return respondError(ctx, err)
	}

	transactionID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCashTransactionCommand(
		transactionID,
		direction,
		amount,
		req.Category,
		req.Description,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.registerCashTxHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: transactionID.String()})
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req createCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	category, err := customer.CategoryFromString(req.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	role, userID := actor(ctx)

	var salespersonID *kernel.UUID
	if role == ports.RoleSalesperson {
		salespersonID = userID
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(
		customerID,
		req.FirstName,
		req.LastName,
		req.TaxID,
		req.Address,
		category,
		req.BusinessName,
		salespersonID,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: customerID.String()})
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req createProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	wholesale, err := parseDecimal(req.WholesalePrice)
	if err != nil {
		return badRequest(ctx, "Invalid wholesale price")
	}
	retailMinor, err := parseDecimal(req.RetailMinorPrice)
	if err != nil {
		return badRequest(ctx, "Invalid retail minor price")
	}
	retailFinal, err := parseDecimal(req.RetailFinalPrice)
	if err != nil {
		return badRequest(ctx, "Invalid retail final price")
	}

	prices, err := product.NewPricePoints(wholesale, retailMinor, retailFinal)
	if err != nil {
		return respondError(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewAddProductCommand(
		productID,
		req.Name,
		req.SKU,
		req.Category,
		prices,
		req.TrackStock,
		req.CurrentStock,
		req.MinStock,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: productID.String()})
}

// GetLowStockProducts handles GET /api/v1/products/low-stock.
func (s *Server) GetLowStockProducts(ctx echo.Context) error {
	products, err := s.getLowStockProductsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetLowStockProductsQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]lowStockProductResponse, len(products))
	for i, p := range products {
		response[i] = lowStockProductResponse{
			ID:           p.ID.String(),
			Name:         p.Name,
			SKU:          p.SKU,
			CurrentStock: p.CurrentStock,
			MinStock:     p.MinStock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
