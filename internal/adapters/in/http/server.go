// Package http exposes the application use cases over an echo/v4 REST API.
// Request bodies are validated before commands are constructed, identity
// comes from the bearer token, and domain errors are mapped to status codes.
package http

import (
	"errors"
	"net/http"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/delivery"
	"farmmarket/internal/core/domain/model/dispatcher"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/model/product"
	"farmmarket/internal/core/domain/services"
	"farmmarket/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned on failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler          commands.CreateOrderCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	recordPaymentHandler        commands.RecordPaymentCommandHandler
	rateOrderHandler            commands.RateOrderCommandHandler
	registerDispatcherHandler   commands.RegisterDispatcherCommandHandler
	createProductHandler        commands.CreateProductCommandHandler

	getDispatcherWorkloadsHandler queries.GetDispatcherWorkloadsQueryHandler
	getActiveOrdersHandler        queries.GetActiveOrdersQueryHandler
	getAvailableProductsHandler   queries.GetAvailableProductsQueryHandler

	validate *validator.Validate
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	registerDispatcherHandler commands.RegisterDispatcherCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	getDispatcherWorkloadsHandler queries.GetDispatcherWorkloadsQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getAvailableProductsHandler queries.GetAvailableProductsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		updateOrderStatusHandler:      updateOrderStatusHandler,
		updateDeliveryStatusHandler:   updateDeliveryStatusHandler,
		recordPaymentHandler:          recordPaymentHandler,
		rateOrderHandler:              rateOrderHandler,
		registerDispatcherHandler:     registerDispatcherHandler,
		createProductHandler:          createProductHandler,
		getDispatcherWorkloadsHandler: getDispatcherWorkloadsHandler,
		getActiveOrdersHandler:        getActiveOrdersHandler,
		getAvailableProductsHandler:   getAvailableProductsHandler,
		validate:                      validator.New(),
	}
}

// RegisterRoutes mounts all routes on the echo instance. Routes under
// /api/v1 require a bearer token except the payment callback, which is
// authenticated by the payment provider out of band.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/products", s.GetProducts)
	api.POST("/payments/callback", s.PaymentCallback)

	auth := api.Group("", AuthMiddleware(jwtSecret))
	auth.POST("/orders", s.CreateOrder, RequireRole(RoleBuyer))
	auth.POST("/orders/:id/status", s.UpdateOrderStatus, RequireRole(RoleFarmer, RoleDispatcher))
	auth.POST("/orders/:id/rating", s.RateOrder)
	auth.GET("/orders/active", s.GetActiveOrders)
	auth.POST("/deliveries/:id/status", s.UpdateDeliveryStatus, RequireRole(RoleDispatcher))
	auth.POST("/dispatchers", s.RegisterDispatcher, RequireRole(RoleDispatcher))
	auth.GET("/dispatchers/workloads", s.GetDispatcherWorkloads)
	auth.POST("/products", s.CreateProduct, RequireRole(RoleFarmer))
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// OrderLineRequest is one line of a checkout request.
type OrderLineRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
}

// CreateOrderRequest is the checkout request body.
type CreateOrderRequest struct {
	FarmerID        string             `json:"farmerId"        validate:"required,uuid"`
	Lines           []OrderLineRequest `json:"lines"           validate:"required,min=1,dive"`
	PickupAddress   string             `json:"pickupAddress"   validate:"required"`
	PickupLat       float64            `json:"pickupLat"       validate:"latitude"`
	PickupLon       float64            `json:"pickupLon"       validate:"longitude"`
	DeliveryAddress string             `json:"deliveryAddress" validate:"required"`
	DeliveryLat     float64            `json:"deliveryLat"     validate:"latitude"`
	DeliveryLon     float64            `json:"deliveryLon"     validate:"longitude"`
	PaymentMethod   string             `json:"paymentMethod"   validate:"required,oneof=lisk_zar cash"`
}

// CreateOrder handles POST /api/v1/orders. The buyer is the authenticated user.
func (s *Server) CreateOrder(c echo.Context) error {
	buyerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return badRequest(c, "Invalid order data: "+err.Error())
	}

	farmerID, err := kernel.UUIDFromString(req.FarmerID)
	if err != nil {
		return badRequest(c, "Invalid farmer id")
	}

	lines := make([]commands.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return badRequest(c, "Invalid product id")
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: line.Quantity})
	}

	pickupPoint, err := kernel.NewGeoPoint(req.PickupLat, req.PickupLon)
	if err != nil {
		return badRequest(c, "Invalid pickup location")
	}
	deliveryPoint, err := kernel.NewGeoPoint(req.DeliveryLat, req.DeliveryLon)
	if err != nil {
		return badRequest(c, "Invalid delivery location")
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return badRequest(c, "Invalid payment method")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, buyerID, farmerID, lines,
		req.PickupAddress, pickupPoint,
		req.DeliveryAddress, deliveryPoint,
		paymentMethod)
	if err != nil {
		return badRequest(c, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.domainError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"orderId": orderID.String()})
}

// UpdateStatusRequest carries the requested next status for an order or delivery.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	var req UpdateStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return badRequest(c, "Invalid status data: "+err.Error())
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(c, "Invalid order status")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, next)
	if err != nil {
		return badRequest(c, "Invalid status data: "+err.Error())
	}

	if err = s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.domainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles POST /api/v1/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid delivery id")
	}

	var req UpdateStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return badRequest(c, "Invalid status data: "+err.Error())
	}

	next, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return badRequest(c, "Invalid delivery status")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, next)
	if err != nil {
		return badRequest(c, "Invalid status data: "+err.Error())
	}

	if err = s.updateDeliveryStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.domainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// PaymentCallbackRequest is the settlement callback body from the payment provider.
type PaymentCallbackRequest struct {
	OrderID string `json:"orderId" validate:"required,uuid"`
	Outcome string `json:"outcome" validate:"required,oneof=paid failed"`
}

// PaymentCallback handles POST /api/v1/payments/callback.
func (s *Server) PaymentCallback(c echo.Context) error {
	var req PaymentCallbackRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(c, "Invalid callback data: "+err.Error())
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	outcome := order.PaymentStatusPaid
	if req.Outcome == "failed" {
		outcome = order.PaymentStatusFailed
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, outcome)
	if err != nil {
		return badRequest(c, "Invalid callback data: "+err.Error())
	}

	if err = s.recordPaymentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.domainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RateOrderRequest is the rating submission body.
type RateOrderRequest struct {
	RatedUserID string `json:"ratedUserId" validate:"required,uuid"`
	Score       int    `json:"score"       validate:"required,min=1,max=5"`
	Comment     string `json:"comment"     validate:"max=1000"`
}

// RateOrder handles POST /api/v1/orders/:id/rating. The rater is the
// authenticated user.
func (s *Server) RateOrder(c echo.Context) error {
	raterID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	var req RateOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return badRequest(c, "Invalid rating data: "+err.Error())
	}

	ratedUserID, err := kernel.UUIDFromString(req.RatedUserID)
	if err != nil {
		return badRequest(c, "Invalid rated user id")
	}

	cmd, err := commands.NewRateOrderCommand(orderID, raterID, ratedUserID, req.Score, req.Comment)
	if err != nil {
		return badRequest(c, "Invalid rating data: "+err.Error())
	}

	if err = s.rateOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.domainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RegisterDispatcherRequest is the dispatcher registration body.
type RegisterDispatcherRequest struct {
	Name    string  `json:"name"    validate:"required"`
	Phone   string  `json:"phone"   validate:"required,e164"`
	Vehicle string  `json:"vehicle" validate:"required,oneof=bicycle motorbike car van"`
	BaseLat float64 `json:"baseLat" validate:"latitude"`
	BaseLon float64 `json:"baseLon" validate:"longitude"`
}

// RegisterDispatcher handles POST /api/v1/dispatchers. The dispatcher profile
// is keyed by the authenticated user's identity.
func (s *Server) RegisterDispatcher(c echo.Context) error {
	dispatcherID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req RegisterDispatcherRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return badRequest(c, "Invalid dispatcher data: "+err.Error())
	}

	vehicle, err := dispatcher.VehicleTypeFromString(req.Vehicle)
	if err != nil {
		return badRequest(c, "Invalid vehicle type")
	}

	basePoint, err := kernel.NewGeoPoint(req.BaseLat, req.BaseLon)
	if err != nil {
		return badRequest(c, "Invalid base location")
	}

	cmd, err := commands.NewRegisterDispatcherCommand(dispatcherID, req.Name, req.Phone, vehicle, basePoint)
	if err != nil {
		return badRequest(c, "Invalid dispatcher data: "+err.Error())
	}

	if err = s.registerDispatcherHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.domainError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// CreateProductRequest is the product listing body.
type CreateProductRequest struct {
	Name           string `json:"name"           validate:"required"`
	Category       string `json:"category"       validate:"required,oneof=vegetables fruits dairy meat eggs grains other"`
	UnitPriceCents int64  `json:"unitPriceCents" validate:"required,gt=0"`
	Quantity       int    `json:"quantity"       validate:"gte=0"`
	Unit           string `json:"unit"           validate:"required"`
}

// CreateProduct handles POST /api/v1/products. The farmer is the
// authenticated user.
func (s *Server) CreateProduct(c echo.Context) error {
	farmerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req CreateProductRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err = s.validate.Struct(req); err != nil {
		return badRequest(c, "Invalid product data: "+err.Error())
	}

	category, err := product.CategoryFromString(req.Category)
	if err != nil {
		return badRequest(c, "Invalid category")
	}

	unitPrice, err := kernel.NewMoney(req.UnitPriceCents)
	if err != nil {
		return badRequest(c, "Invalid unit price")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, farmerID, req.Name, category,
		unitPrice, req.Quantity, req.Unit)
	if err != nil {
		return badRequest(c, "Invalid product data: "+err.Error())
	}

	if err = s.createProductHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.domainError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"productId": productID.String()})
}

// WorkloadResponse is one dispatcher's workload in the API response.
type WorkloadResponse struct {
	DispatcherID  string `json:"dispatcherId"`
	Name          string `json:"name"`
	PendingOrders int    `json:"pendingOrders"`
	TotalOrders   int    `json:"totalOrders"`
}

// GetDispatcherWorkloads handles GET /api/v1/dispatchers/workloads.
func (s *Server) GetDispatcherWorkloads(c echo.Context) error {
	query := queries.NewGetDispatcherWorkloadsQuery()

	workloads, err := s.getDispatcherWorkloadsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return internalError(c, "Failed to retrieve workloads")
	}

	response := make([]WorkloadResponse, len(workloads))
	for i, w := range workloads {
		response[i] = WorkloadResponse{
			DispatcherID:  w.DispatcherID.String(),
			Name:          w.Name,
			PendingOrders: w.PendingOrders,
			TotalOrders:   w.TotalOrders,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// ActiveOrderResponse is one in-flight order in the API response.
type ActiveOrderResponse struct {
	ID               string `json:"id"`
	BuyerID          string `json:"buyerId"`
	FarmerID         string `json:"farmerId"`
	DispatcherID     string `json:"dispatcherId,omitempty"`
	Status           string `json:"status"`
	TotalAmountCents int64  `json:"totalAmountCents"`
	DeliveryAddress  string `json:"deliveryAddress"`
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(c echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return internalError(c, "Failed to retrieve orders")
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		resp := ActiveOrderResponse{
			ID:               o.ID.String(),
			BuyerID:          o.BuyerID.String(),
			FarmerID:         o.FarmerID.String(),
			Status:           o.Status.String(),
			TotalAmountCents: o.TotalAmount.Cents(),
			DeliveryAddress:  o.DeliveryAddress,
		}
		if o.DispatcherID != nil {
			resp.DispatcherID = o.DispatcherID.String()
		}
		response[i] = resp
	}

	return c.JSON(http.StatusOK, response)
}

// ProductResponse is one purchasable listing in the API response.
type ProductResponse struct {
	ID             string `json:"id"`
	FarmerID       string `json:"farmerId"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	Unit           string `json:"unit"`
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(c echo.Context) error {
	query := queries.NewGetAvailableProductsQuery()

	listings, err := s.getAvailableProductsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return internalError(c, "Failed to retrieve products")
	}

	response := make([]ProductResponse, len(listings))
	for i, listing := range listings {
		response[i] = ProductResponse{
			ID:             listing.ID.String(),
			FarmerID:       listing.FarmerID.String(),
			Name:           listing.Name,
			Category:       listing.Category.String(),
			UnitPriceCents: listing.UnitPrice.Cents(),
			Quantity:       listing.Quantity,
			Unit:           listing.Unit,
		}
	}

	return c.JSON(http.StatusOK, response)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// domainError maps use case failures to HTTP status codes.
func (s *Server) domainError(c echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, commands.ErrNotOrderParticipant):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, commands.ErrOrderNotDelivered),
		errors.Is(err, commands.ErrNotEnoughStock),
		errors.Is(err, commands.ErrProductNotAvailable),
		errors.Is(err, order.ErrDispatcherAlreadyAssigned),
		errors.Is(err, services.ErrNoDispatcherAvailable):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrProductWrongFarmer):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}
