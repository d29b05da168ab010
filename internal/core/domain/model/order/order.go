package order

import (
	"errors"
	"fmt"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents one laboratory service order. It is the aggregate root that
// carries the order's identity, its requesting parties and its lifecycle fields.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier
//   - lab, patient and customer must be non-empty
//   - services must contain at least one element at all times
//   - state only moves forward through the lifecycle sequence, one step at a time
//   - status is an independent soft-delete flag, orthogonal to state
//
// The state field has no general-purpose setter. The only mutation path is
// AdvanceState, which accepts exactly the immediate successor of the current
// state; the lifecycle domain service is its intended caller. Edits via
// Edit never touch state, so a generic update cannot move an order backward
// through its lifecycle.
type Order struct {
	id kernel.UUID

	lab      string
	patient  string
	customer string

	state    State
	status   Status
	services []Service

	isConstructed bool
}

// NewOrder creates a new Order with a fresh lifecycle: state CREATED and
// status ACTIVE. All other fields are validated; services must contain at
// least one element.
func NewOrder(id kernel.UUID, lab, patient, customer string, services []Service) (*Order, error) {
	order := &Order{
		state:         StateCreated,
		status:        StatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setLab(lab),
		order.setPatient(patient),
		order.setCustomer(customer),
		order.setServices(services),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder builds an Order with explicit state and status. It applies the
// same field validation as NewOrder and additionally validates the lifecycle
// fields. Used for persistence rehydration and for create requests that
// supply their own lifecycle position.
func RestoreOrder(
	id kernel.UUID,
	lab, patient, customer string,
	state State,
	status Status,
	services []Service,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setLab(lab),
		order.setPatient(patient),
		order.setCustomer(customer),
		order.setServices(services),
		order.setState(state),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Lab returns the laboratory the order is addressed to.
func (o *Order) Lab() string {
	return o.lab
}

// Patient returns the patient the order's services are performed for.
func (o *Order) Patient() string {
	return o.patient
}

// Customer returns the party that requested and pays for the order.
func (o *Order) Customer() string {
	return o.customer
}

// State returns the order's current lifecycle stage.
func (o *Order) State() State {
	return o.state
}

// Status returns the order's soft-delete flag.
func (o *Order) Status() Status {
	return o.status
}

// Services returns the order's services in their original sequence.
// The returned slice is a copy and safe to modify.
func (o *Order) Services() []Service {
	services := make([]Service, len(o.services))
	copy(services, o.services)
	return services
}

// Edit replaces the order's editable fields: lab, patient, customer, status
// and services. Flipping status back to ACTIVE here reactivates a soft-deleted
// order. The lifecycle state is deliberately not editable; it moves only
// through AdvanceState.
func (o *Order) Edit(lab, patient, customer string, status Status, services []Service) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return errors.Join(
		o.setLab(lab),
		o.setPatient(patient),
		o.setCustomer(customer),
		o.setStatus(status),
		o.setServices(services),
	)
}

// MarkDeleted soft-deletes the order by setting its status to DELETED.
// The lifecycle state is untouched. Marking an already deleted order is a no-op.
func (o *Order) MarkDeleted() {
	o.status = StatusDeleted
}

// AdvanceState moves the order to the given state, which must be exactly the
// immediate successor of the current state in the lifecycle sequence. Any
// other target, including the current state itself or a skip ahead, is
// rejected and the order is left unchanged.
//
// This is the single write path for the state field. Callers are expected to
// obtain the target state from the lifecycle domain service rather than
// choosing one themselves.
func (o *Order) AdvanceState(next State) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if next.position() != o.state.position()+1 {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%s does not directly follow %s", next, o.state))
	}

	o.state = next
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setLab validates and sets the laboratory name.
func (o *Order) setLab(lab string) error {
	if lab == "" {
		return errs.NewValueIsRequiredError("lab")
	}
	o.lab = lab
	return nil
}

// setPatient validates and sets the patient name.
func (o *Order) setPatient(patient string) error {
	if patient == "" {
		return errs.NewValueIsRequiredError("patient")
	}
	o.patient = patient
	return nil
}

// setCustomer validates and sets the customer name.
func (o *Order) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}

// setServices validates and sets the services list.
// An order must carry at least one service at all times.
func (o *Order) setServices(services []Service) error {
	if len(services) == 0 {
		return errs.NewValueIsRequiredError("services")
	}

	for _, service := range services {
		if service.Name() == "" {
			return errs.NewValueIsRequiredError("service name")
		}
		if service.Value() <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("service value",
				fmt.Errorf("%v is not greater than 0", service.Value()))
		}
	}

	o.services = make([]Service, len(services))
	copy(o.services, services)
	return nil
}

// setState validates and sets the lifecycle state during reconstruction.
func (o *Order) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	o.state = state
	return nil
}

// setStatus validates and sets the soft-delete flag.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
