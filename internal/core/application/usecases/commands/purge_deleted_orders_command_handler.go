package commands

import (
	"context"

	"laborders/internal/core/domain/model/order"
)

// PurgeDeletedOrdersCommandHandler physically removes orders that were
// soft-deleted earlier. Runs from the background purge job.
type PurgeDeletedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeDeletedOrdersCommandHandler creates a handler for purge operations.
func NewPurgeDeletedOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeDeletedOrdersCommandHandler {
	return PurgeDeletedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes every order with DELETED status and reports how many rows
// were purged. All removals happen in a single transaction.
func (h *PurgeDeletedOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeDeletedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().FindAll(ctx)
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, aggregate := range orders {
		if aggregate.Status() != order.StatusDeleted {
			continue
		}

		if err = uow.OrderRepository().Delete(ctx, aggregate.ID()); err != nil {
			return 0, err
		}
		purged++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
