package commands

import (
	"errors"
	"time"

	"freshly/internal/pkg/errs"
	"freshly/internal/pkg/guard"
)

var ErrCancelStaleRequestsCommandIsNotConstructed = errors.New(
	"CancelStaleRequestsCommand must be created via NewCancelStaleRequestsCommand constructor",
)

// CancelStaleRequestsCommand asks the system to cancel pending requests
// created before the given cutoff.
type CancelStaleRequestsCommand struct { //nolint:recvcheck //using for validation
	before time.Time

	guard guard.ConstructorGuard
}

// NewCancelStaleRequestsCommand validates and builds the command.
func NewCancelStaleRequestsCommand(before time.Time) (CancelStaleRequestsCommand, error) {
	command := CancelStaleRequestsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBefore(before); err != nil {
		return CancelStaleRequestsCommand{}, err
	}

	return command, nil
}

func (c CancelStaleRequestsCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleRequestsCommandIsNotConstructed)
}

func (c CancelStaleRequestsCommand) Before() time.Time {
	return c.before
}

func (c *CancelStaleRequestsCommand) setBefore(before time.Time) error {
	if before.IsZero() {
		return errs.NewValueIsRequiredError("before")
	}

	c.before = before
	return nil
}
