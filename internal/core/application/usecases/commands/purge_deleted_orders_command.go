package commands

import (
	"errors"

	"laborders/internal/pkg/guard"
)

var (
	ErrPurgeDeletedOrdersCommandIsNotConstructed = errors.New(
		"PurgeDeletedOrdersCommand must be created via NewPurgeDeletedOrdersCommand constructor",
	)
)

// PurgeDeletedOrdersCommand represents a request to physically remove all
// soft-deleted orders. Carries no parameters; the handler decides what to
// purge from the current data.
type PurgeDeletedOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeDeletedOrdersCommand creates a command to purge soft-deleted orders.
func NewPurgeDeletedOrdersCommand() PurgeDeletedOrdersCommand {
	return PurgeDeletedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeDeletedOrdersCommandIsNotConstructed if validation fails.
func (c PurgeDeletedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeDeletedOrdersCommandIsNotConstructed)
}
