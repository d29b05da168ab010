package commands

import (
	"errors"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/pkg/errs"
	"laborders/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a request to edit an order's descriptive
// fields and, optionally, its status: supplying ACTIVE reactivates a
// soft-deleted order, an empty status leaves the current one in place.
// Lifecycle state is deliberately absent; it only moves through
// AdvanceOrderCommand.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	lab       string
	patient   string
	customer  string
	status    order.Status
	hasStatus bool
	services  []order.Service

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an existing lab order.
// Applies the same field validation as NewCreateOrderCommand.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	lab, patient, customer string,
	status string,
	services []order.Service,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setLab(lab),
		orderCommand.setPatient(patient),
		orderCommand.setCustomer(customer),
		orderCommand.setStatus(status),
		orderCommand.setServices(services),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identity of the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lab returns the new laboratory value.
func (c UpdateOrderCommand) Lab() string {
	return c.lab
}

// Patient returns the new patient value.
func (c UpdateOrderCommand) Patient() string {
	return c.patient
}

// Customer returns the new customer value.
func (c UpdateOrderCommand) Customer() string {
	return c.customer
}

// Status returns the requested status and whether one was supplied.
func (c UpdateOrderCommand) Status() (order.Status, bool) {
	return c.status, c.hasStatus
}

// Services returns the replacement service list, in request order.
func (c UpdateOrderCommand) Services() []order.Service {
	services := make([]order.Service, len(c.services))
	copy(services, c.services)
	return services
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setLab(lab string) error {
	if lab == "" {
		return errs.NewValueIsRequiredError("lab")
	}

	c.lab = lab
	return nil
}

func (c *UpdateOrderCommand) setPatient(patient string) error {
	if patient == "" {
		return errs.NewValueIsRequiredError("patient")
	}

	c.patient = patient
	return nil
}

func (c *UpdateOrderCommand) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}

	c.customer = customer
	return nil
}

func (c *UpdateOrderCommand) setStatus(status string) error {
	if status == "" {
		return nil
	}

	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	c.status = parsed
	c.hasStatus = true
	return nil
}

func (c *UpdateOrderCommand) setServices(services []order.Service) error {
	if len(services) == 0 {
		return errs.NewValueIsRequiredError("services")
	}

	c.services = make([]order.Service, len(services))
	copy(c.services, services)
	return nil
}
