// Package http provides the inbound HTTP adapter: request handlers, DTOs and
// the bearer token middleware. Handlers translate transport concerns into
// commands and queries and map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"laborders/internal/core/application/usecases/commands"
	"laborders/internal/core/application/usecases/queries"
	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/services"
	"laborders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler
	registerUserHandler commands.RegisterUserCommandHandler

	listOrdersHandler       queries.ListOrdersQueryHandler
	authenticateUserHandler queries.AuthenticateUserQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	authenticateUserHandler queries.AuthenticateUserQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		advanceOrderHandler:     advanceOrderHandler,
		updateOrderHandler:      updateOrderHandler,
		deleteOrderHandler:      deleteOrderHandler,
		registerUserHandler:     registerUserHandler,
		listOrdersHandler:       listOrdersHandler,
		authenticateUserHandler: authenticateUserHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
// The order routes sit behind the bearer token middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	v1 := e.Group("/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)

	orders := v1.Group("/orders", authMiddleware)
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.PATCH("/:id/advance", s.AdvanceOrder)
	orders.PUT("/:id", s.UpdateOrder)
	orders.DELETE("/:id", s.DeleteOrder)
}

// Register handles POST /v1/auth/register - creates a user account.
//
//	@Summary		Register a user account
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Account credentials"
//	@Success		201		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/v1/auth/register [post]
func (s *Server) Register(ctx echo.Context) error {
	var request RegisterRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, request.Email, request.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, UserResponse{
		ID:    userID.String(),
		Email: request.Email,
	})
}

// Login handles POST /v1/auth/login - checks credentials and issues a token.
//
//	@Summary		Authenticate and obtain an access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Account credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/v1/auth/login [post]
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewAuthenticateUserQuery(request.Email, request.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token: result.Token,
		User: UserResponse{
			ID:    result.User.ID.String(),
			Email: result.User.Email,
		},
	})
}

// CreateOrder handles POST /v1/orders - registers a new lab order.
//
//	@Summary		Create a lab order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		OrderRequest	true	"Order fields"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/v1/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	domainServices, err := toDomainServices(request.Services)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, request.Lab, request.Patient, request.Customer,
		request.State, request.Status, domainServices)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	serviceBodies := make([]ServiceResponse, 0, len(domainServices))
	for _, svc := range domainServices {
		serviceBodies = append(serviceBodies, ServiceResponse{
			Name:   svc.Name(),
			Value:  svc.Value(),
			Status: svc.Status().String(),
		})
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		ID:       orderID.String(),
		Lab:      request.Lab,
		Patient:  request.Patient,
		Customer: request.Customer,
		State:    cmd.State().String(),
		Status:   cmd.Status().String(),
		Services: serviceBodies,
	})
}

// ListOrders handles GET /v1/orders - returns one page of orders.
//
//	@Summary		List lab orders
//	@Tags			orders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page		query		int		false	"1-based page number"		default(1)
//	@Param			rowPerPage	query		int		false	"page size"					default(10)
//	@Param			state		query		string	false	"lifecycle state filter"	Enums(CREATED, ANALYSIS, COMPLETED)
//	@Success		200			{object}	ListOrdersResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/v1/orders [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	page, err := queryInt(ctx, "page")
	if err != nil {
		return badRequest(ctx, "Invalid page parameter")
	}
	rowPerPage, err := queryInt(ctx, "rowPerPage")
	if err != nil {
		return badRequest(ctx, "Invalid rowPerPage parameter")
	}

	query, err := queries.NewListOrdersQuery(page, rowPerPage, ctx.QueryParam("state"))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	orders := make([]OrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, orderResponseFromReadModel(o))
	}

	return ctx.JSON(http.StatusOK, ListOrdersResponse{
		Total:      result.Total,
		Page:       result.Page,
		RowPerPage: result.RowPerPage,
		Orders:     orders,
	})
}

// AdvanceOrder handles PATCH /v1/orders/:id/advance - moves the order one
// lifecycle step forward.
//
//	@Summary		Advance a lab order to its next lifecycle state
//	@Tags			orders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	OrderResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/v1/orders/{id}/advance [patch]
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// UpdateOrder handles PUT /v1/orders/:id - edits an order's descriptive fields.
//
//	@Summary		Update a lab order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string			true	"Order ID"
//	@Param			request	body		OrderRequest	true	"Replacement fields"
//	@Success		200		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/v1/orders/{id} [put]
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var request OrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	domainServices, err := toDomainServices(request.Services)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, request.Lab, request.Patient, request.Customer,
		request.Status, domainServices)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// DeleteOrder handles DELETE /v1/orders/:id - soft-deletes an order.
//
//	@Summary		Delete a lab order
//	@Tags			orders
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Order ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/v1/orders/{id} [delete]
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, services.ErrOrderCannotBeAdvanced),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func queryInt(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
