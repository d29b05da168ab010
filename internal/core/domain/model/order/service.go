package order

import (
	"fmt"

	"laborders/internal/pkg/errs"
)

// ServiceStatus is the completion flag of a single service within an order.
type ServiceStatus string

const (
	// ServicePending marks a service that has not been performed yet.
	// This is the default at creation.
	ServicePending ServiceStatus = "PENDING"

	// ServiceDone marks a performed service.
	ServiceDone ServiceStatus = "DONE"
)

// ServiceStatusFromString parses a service status from its string representation.
func ServiceStatusFromString(s string) (ServiceStatus, error) {
	status := ServiceStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the ServiceStatus is either PENDING or DONE.
func (s ServiceStatus) Validate() error {
	if s != ServicePending && s != ServiceDone {
		return errs.NewValueIsInvalidErrorWithCause("service status",
			fmt.Errorf("%q is not a valid service status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s ServiceStatus) String() string {
	return string(s)
}

// Service is a value object describing one named, priced item of an order.
// It has no identity of its own: two services with the same name, value and
// status are interchangeable. Services are immutable after construction.
type Service struct {
	name   string
	value  float64
	status ServiceStatus
}

// NewService creates a Service with validation.
// The name must be non-empty and the value strictly positive. An empty status
// defaults to ServicePending; otherwise it must be a valid ServiceStatus.
func NewService(name string, value float64, status ServiceStatus) (Service, error) {
	if name == "" {
		return Service{}, errs.NewValueIsRequiredError("service name")
	}
	if value <= 0 {
		return Service{}, errs.NewValueIsInvalidErrorWithCause("service value",
			fmt.Errorf("%v is not greater than 0", value))
	}
	if status == "" {
		status = ServicePending
	}
	if err := status.Validate(); err != nil {
		return Service{}, err
	}

	return Service{
		name:   name,
		value:  value,
		status: status,
	}, nil
}

// Name returns the service's name.
func (s Service) Name() string {
	return s.name
}

// Value returns the service's price.
func (s Service) Value() float64 {
	return s.value
}

// Status returns the service's completion status.
func (s Service) Status() ServiceStatus {
	return s.status
}
