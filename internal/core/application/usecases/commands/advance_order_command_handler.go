package commands

import (
	"context"

	"laborders/internal/core/domain/model/order"
	"laborders/internal/core/domain/services"
)

// AdvanceOrderCommandHandler handles the business logic for lifecycle advancement.
// The transition rule lives in the OrderLifecycle domain service; the handler
// only orchestrates loading, advancing and persisting the aggregate.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, services.NewOrderLifecycle())
//	cmd, _ := NewAdvanceOrderCommand(orderID)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order advancement failed: %w", err)
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  services.OrderLifecycle
}

// NewAdvanceOrderCommandHandler creates a handler for order advancement operations.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	lifecycle services.OrderLifecycle,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle processes the advancement command and returns the updated order.
// Terminal orders yield services.ErrOrderCannotBeAdvanced and nothing is
// persisted; unknown identities surface as errs.ObjectNotFoundError from the
// repository.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
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

	if err = h.lifecycle.Advance(ctx, aggregate); err != nil {
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
