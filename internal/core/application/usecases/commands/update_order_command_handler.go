package commands

import (
	"context"

	"laborders/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles the business logic for order editing.
// Loads the aggregate, applies the edit through the aggregate's own rules
// and persists the result. A supplied status replaces the current one;
// lifecycle state is never touched here.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order editing operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command and returns the updated order.
// Unknown identities surface as errs.ObjectNotFoundError from the repository.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	status := aggregate.Status()
	if requested, ok := cmd.Status(); ok {
		status = requested
	}

	if err = aggregate.Edit(cmd.Lab(), cmd.Patient(), cmd.Customer(), status, cmd.Services()); err != nil {
		return nil, err
	}

	updated, err := uow.OrderRepository().Update(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
