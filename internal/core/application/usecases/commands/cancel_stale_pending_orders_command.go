package commands

import (
	"errors"
	"time"

	"homechef/internal/pkg/errs"
	"homechef/internal/pkg/guard"
)

var ErrCancelStalePendingOrdersCommandIsNotConstructed = errors.New(
	"CancelStalePendingOrdersCommand must be created via NewCancelStalePendingOrdersCommand constructor",
)

// CancelStalePendingOrdersCommand represents a sweep over orders that have
// sat in pending longer than the allowed age without a payment result. It is
// issued by the scheduler.
type CancelStalePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStalePendingOrdersCommand creates a command for the stale order
// sweep. maxAge is how long an order may stay pending before it is cancelled.
func NewCancelStalePendingOrdersCommand(maxAge time.Duration) (CancelStalePendingOrdersCommand, error) {
	command := CancelStalePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setMaxAge(maxAge); err != nil {
		return CancelStalePendingOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStalePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStalePendingOrdersCommandIsNotConstructed)
}

// MaxAge returns the pending age threshold.
func (c CancelStalePendingOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *CancelStalePendingOrdersCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return errs.NewValueIsOutOfRangeError("maxAge", maxAge, time.Nanosecond, nil)
	}
	c.maxAge = maxAge
	return nil
}
