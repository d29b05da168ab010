package commands

import (
	"errors"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/pkg/errs"
	"laborders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new lab order.
// It carries the requesting parties, at least one service to perform and
// optional lifecycle fields: an empty state defaults to CREATED, an empty
// status to ACTIVE. The transport layer has already checked syntactic shape;
// the command re-checks the domain invariants it depends on (non-empty
// fields, valid lifecycle values, at least one valid service).
//
// Example:
//
//	services := []order.Service{bloodCount}
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Central Lab", "Jane Roe", "Acme Clinic", "", "", services)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	lab      string
	patient  string
	customer string
	state    order.State
	status   order.Status
	services []order.Service

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new lab order.
// Validates that the order ID is valid, lab/patient/customer are non-empty,
// state and status (when supplied) name known lifecycle values and at least
// one service is supplied. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	lab, patient, customer string,
	state, status string,
	services []order.Service,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setLab(lab),
		orderCommand.setPatient(patient),
		orderCommand.setCustomer(customer),
		orderCommand.setState(state),
		orderCommand.setStatus(status),
		orderCommand.setServices(services),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identity the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lab returns the laboratory the order is addressed to.
func (c CreateOrderCommand) Lab() string {
	return c.lab
}

// Patient returns the patient the order's services are performed for.
func (c CreateOrderCommand) Patient() string {
	return c.patient
}

// Customer returns the party that requested the order.
func (c CreateOrderCommand) Customer() string {
	return c.customer
}

// State returns the lifecycle state the order starts in.
func (c CreateOrderCommand) State() order.State {
	return c.state
}

// Status returns the status the order starts with.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// Services returns the services to perform, in request order.
func (c CreateOrderCommand) Services() []order.Service {
	services := make([]order.Service, len(c.services))
	copy(services, c.services)
	return services
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLab(lab string) error {
	if lab == "" {
		return errs.NewValueIsRequiredError("lab")
	}

	c.lab = lab
	return nil
}

func (c *CreateOrderCommand) setPatient(patient string) error {
	if patient == "" {
		return errs.NewValueIsRequiredError("patient")
	}

	c.patient = patient
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setState(state string) error {
	if state == "" {
		c.state = order.StateCreated
		return nil
	}

	parsed, err := order.StateFromString(state)
	if err != nil {
		return err
	}

	c.state = parsed
	return nil
}

func (c *CreateOrderCommand) setStatus(status string) error {
	if status == "" {
		c.status = order.StatusActive
		return nil
	}

	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}

func (c *CreateOrderCommand) setServices(services []order.Service) error {
	if len(services) == 0 {
		return errs.NewValueIsRequiredError("services")
	}

	c.services = make([]order.Service, len(services))
	copy(c.services, services)
	return nil
}
