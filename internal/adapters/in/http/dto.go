package http

import (
	"laborders/internal/core/application/usecases/queries"
	"laborders/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterRequest is the body of POST /v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents a user account in responses.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginResponse is the body returned by POST /v1/auth/login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ServiceRequest is one service line in order create and update bodies.
type ServiceRequest struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Status string  `json:"status"`
}

// OrderRequest is the body of POST /v1/orders and PUT /v1/orders/:id.
// State and status are optional: on create they default to CREATED/ACTIVE,
// on update an empty status keeps the current one and state is ignored
// (lifecycle moves only through the advance endpoint).
type OrderRequest struct {
	Lab      string           `json:"lab"`
	Patient  string           `json:"patient"`
	Customer string           `json:"customer"`
	State    string           `json:"state"`
	Status   string           `json:"status"`
	Services []ServiceRequest `json:"services"`
}

// ServiceResponse is one service line in order responses.
type ServiceResponse struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Status string  `json:"status"`
}

// OrderResponse represents an order in responses.
type OrderResponse struct {
	ID       string            `json:"id"`
	Lab      string            `json:"lab"`
	Patient  string            `json:"patient"`
	Customer string            `json:"customer"`
	State    string            `json:"state"`
	Status   string            `json:"status"`
	Services []ServiceResponse `json:"services"`
}

// ListOrdersResponse is the paginated body of GET /v1/orders. Page and
// rowPerPage echo the window the query resolved, defaults included.
type ListOrdersResponse struct {
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	RowPerPage int             `json:"rowPerPage"`
	Orders     []OrderResponse `json:"orders"`
}

func toDomainServices(requests []ServiceRequest) ([]order.Service, error) {
	services := make([]order.Service, 0, len(requests))
	for _, r := range requests {
		status := order.ServicePending
		if r.Status != "" {
			parsed, err := order.ServiceStatusFromString(r.Status)
			if err != nil {
				return nil, err
			}
			status = parsed
		}

		service, err := order.NewService(r.Name, r.Value, status)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	return services, nil
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	domainServices := aggregate.Services()
	services := make([]ServiceResponse, 0, len(domainServices))
	for _, s := range domainServices {
		services = append(services, ServiceResponse{
			Name:   s.Name(),
			Value:  s.Value(),
			Status: s.Status().String(),
		})
	}

	return OrderResponse{
		ID:       aggregate.ID().String(),
		Lab:      aggregate.Lab(),
		Patient:  aggregate.Patient(),
		Customer: aggregate.Customer(),
		State:    aggregate.State().String(),
		Status:   aggregate.Status().String(),
		Services: services,
	}
}

func orderResponseFromReadModel(model queries.OrderResponse) OrderResponse {
	services := make([]ServiceResponse, 0, len(model.Services))
	for _, s := range model.Services {
		services = append(services, ServiceResponse{
			Name:   s.Name,
			Value:  s.Value,
			Status: s.Status,
		})
	}

	return OrderResponse{
		ID:       model.ID.String(),
		Lab:      model.Lab,
		Patient:  model.Patient,
		Customer: model.Customer,
		State:    model.State,
		Status:   model.Status,
		Services: services,
	}
}
