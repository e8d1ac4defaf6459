// Package http exposes the order lifecycle over a REST API built on Echo.
// Handlers translate between JSON payloads and application commands/queries;
// domain failures map to HTTP statuses through one shared error translator.
package http

import (
	"errors"
	"net/http"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/metrics"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createUserHandler    commands.CreateUserCommandHandler
	createProductHandler commands.CreateProductCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	advanceOrderHandler  commands.AdvanceOrderStatusCommandHandler

	getAllUsersHandler    queries.GetAllUsersQueryHandler
	getAllProductsHandler queries.GetAllProductsQueryHandler
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
	getUserOrdersHandler  queries.GetUserOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler

	orderMetrics *metrics.OrderMetrics
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createUserHandler commands.CreateUserCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderStatusCommandHandler,
	getAllUsersHandler queries.GetAllUsersQueryHandler,
	getAllProductsHandler queries.GetAllProductsQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	orderMetrics *metrics.OrderMetrics,
) *Server {
	return &Server{
		createUserHandler:     createUserHandler,
		createProductHandler:  createProductHandler,
		createOrderHandler:    createOrderHandler,
		advanceOrderHandler:   advanceOrderHandler,
		getAllUsersHandler:    getAllUsersHandler,
		getAllProductsHandler: getAllProductsHandler,
		getAllOrdersHandler:   getAllOrdersHandler,
		getUserOrdersHandler:  getUserOrdersHandler,
		getOrderHandler:       getOrderHandler,
		orderMetrics:          orderMetrics,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.POST("/users", s.CreateUser)
	v1.GET("/users", s.GetUsers)
	v1.GET("/users/:userID/orders", s.GetUserOrders)
	v1.POST("/products", s.CreateProduct)
	v1.GET("/products", s.GetProducts)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:orderID", s.GetOrder)
	v1.GET("/orders/:orderID/status", s.GetOrderStatus)
	v1.GET("/orders/:orderID/delivery-time", s.GetOrderDeliveryTime)
	v1.POST("/orders/:orderID/advance", s.AdvanceOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateUser handles POST /api/v1/users - registers a new user.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req CreateUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateUserCommand(req.Username)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, UserResponse{
		ID:       cmd.UserID().Bytes(),
		Username: cmd.Username(),
	})
}

// GetUsers handles GET /api/v1/users - retrieves all users.
func (s *Server) GetUsers(ctx echo.Context) error {
	users, err := s.getAllUsersHandler.Handle(ctx.Request().Context(), queries.NewGetAllUsersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]UserResponse, len(users))
	for i, u := range users {
		response[i] = UserResponse{
			ID:       u.ID.Bytes(),
			Username: u.Username,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products - adds a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, decimal.NewFromFloat(req.Price), req.Stock)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ProductResponse{
		ID:    cmd.ProductID().Bytes(),
		Name:  cmd.Name(),
		Price: cmd.Price(),
		Stock: cmd.Stock(),
	})
}

// GetProducts handles GET /api/v1/products - retrieves the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getAllProductsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllProductsQuery(),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{
			ID:    p.ID.Bytes(),
			Name:  p.Name,
			Price: p.Price,
			Stock: p.Stock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromBytes(req.UserID[:])
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, idErr := kernel.UUIDFromBytes(item.ProductID[:])
		if idErr != nil {
			return badRequest(ctx, "Invalid product id")
		}
		items = append(items, commands.OrderItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(userID, items, time.Now())
	if err != nil {
		return errorResponse(ctx, err)
	}

	createdOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.orderMetrics.OrderRejected()
		return errorResponse(ctx, err)
	}

	s.orderMetrics.OrderCreated()

	itemResponses := make([]OrderItemResponse, 0, len(createdOrder.Items()))
	for _, item := range createdOrder.Items() {
		itemResponses = append(itemResponses, OrderItemResponse{
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
		})
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		ID:           createdOrder.ID().Bytes(),
		UserID:       createdOrder.UserID().Bytes(),
		Status:       createdOrder.Status().String(),
		CreatedAt:    createdOrder.CreatedAt(),
		DeliveryTime: createdOrder.DeliveryTime(),
		Items:        itemResponses,
	})
}

// GetOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesToResponse(orders))
}

// GetUserOrders handles GET /api/v1/users/:userID/orders - retrieves one user's orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userID"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesToResponse(orders))
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves one order with items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]OrderItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID.Bytes(),
			Quantity:  item.Quantity,
		})
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:           result.ID.Bytes(),
		UserID:       result.UserID.Bytes(),
		Status:       result.Status.String(),
		CreatedAt:    result.CreatedAt,
		DeliveryTime: result.DeliveryTime,
		Items:        items,
	})
}

// GetOrderStatus handles GET /api/v1/orders/:orderID/status.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		ID:     result.ID.Bytes(),
		Status: result.Status.String(),
	})
}

// GetOrderDeliveryTime handles GET /api/v1/orders/:orderID/delivery-time.
func (s *Server) GetOrderDeliveryTime(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryTimeResponse{
		ID:           result.ID.Bytes(),
		DeliveryTime: result.DeliveryTime,
	})
}

// AdvanceOrder handles POST /api/v1/orders/:orderID/advance - moves an order
// one stage forward. Advancing a delivered order is a no-op that reports the
// terminal status.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, time.Now())
	if err != nil {
		return errorResponse(ctx, err)
	}

	newStatus, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	s.orderMetrics.OrderAdvanced()

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		ID:     orderID.Bytes(),
		Status: newStatus.String(),
	})
}

func orderSummariesToResponse(orders []queries.OrderSummary) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:           o.ID.Bytes(),
			UserID:       o.UserID.Bytes(),
			Status:       o.Status.String(),
			CreatedAt:    o.CreatedAt,
			DeliveryTime: o.DeliveryTime,
		}
	}
	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain failures to HTTP statuses: missing objects to
// 404, every validation and stock failure to 400, anything else to 500.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrInsufficientStock):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
