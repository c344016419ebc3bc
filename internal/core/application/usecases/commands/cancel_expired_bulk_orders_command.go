package commands

import (
	"errors"

	"homechef/internal/pkg/guard"
)

var ErrCancelExpiredBulkOrdersCommandIsNotConstructed = errors.New(
	"CancelExpiredBulkOrdersCommand must be created via NewCancelExpiredBulkOrdersCommand constructor",
)

// CancelExpiredBulkOrdersCommand represents a sweep over bulk orders whose
// confirmation deadline has passed without the order being confirmed. It is
// issued by the scheduler and carries no payload.
type CancelExpiredBulkOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCancelExpiredBulkOrdersCommand creates a command for the deadline sweep.
func NewCancelExpiredBulkOrdersCommand() (CancelExpiredBulkOrdersCommand, error) {
	return CancelExpiredBulkOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelExpiredBulkOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelExpiredBulkOrdersCommandIsNotConstructed)
}
