package commands

import (
	"errors"

	"couriermanagement/internal/pkg/guard"
)

var ErrStartDueDeliveriesCommandIsNotConstructed = errors.New(
	"StartDueDeliveriesCommand must be created via NewStartDueDeliveriesCommand constructor",
)

// StartDueDeliveriesCommand represents a request to move every delivery whose
// dispatch time has passed from Created into InProgress. Carries no payload;
// the handler works off the clock.
type StartDueDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewStartDueDeliveriesCommand creates a command to start due deliveries.
func NewStartDueDeliveriesCommand() StartDueDeliveriesCommand {
	return StartDueDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c StartDueDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrStartDueDeliveriesCommandIsNotConstructed)
}
