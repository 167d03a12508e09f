package commands

import (
	"errors"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/pkg/guard"
)

var (
	ErrGenerateDeliveriesCommandIsNotConstructed = errors.New(
		"GenerateDeliveriesCommand must be created via NewGenerateDeliveriesCommand constructor",
	)
	ErrPlanDaysAreRequired   = errors.New("plan must contain at least one day")
	ErrDayRoutesAreRequired  = errors.New("day must contain at least one route")
	ErrRouteItemsAreRequired = errors.New("route must contain at least one manifest item")
	ErrItemQuantityIsInvalid = errors.New("manifest item quantity must be greater than 0")
)

// ManifestItemRequest references a product and the unit count to carry.
type ManifestItemRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

// RoutePlanRequest names a route and the cargo it should carry. Route order
// within a day is meaningful: earlier routes get first pick of resources.
type RoutePlanRequest struct {
	RouteID kernel.UUID
	Items   []ManifestItemRequest
}

// DayPlanRequest groups the routes requested for one delivery date.
type DayPlanRequest struct {
	Date   kernel.Date
	Routes []RoutePlanRequest
}

// GenerateDeliveriesCommand represents a request to batch-generate delivery
// assignments for a multi-day plan. Each day lists routes with their cargo;
// the handler resolves resources and lets the assignment planner place them.
//
// Example:
//
//	cmd, err := NewGenerateDeliveriesCommand(days)
//	if err != nil {
//	    return fmt.Errorf("invalid plan: %w", err)
//	}
//
//	handler := NewGenerateDeliveriesCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type GenerateDeliveriesCommand struct { //nolint:recvcheck //using for validation
	days []DayPlanRequest

	guard guard.ConstructorGuard
}

// NewGenerateDeliveriesCommand creates a command from the requested plan.
// The plan must contain at least one day, every day at least one route with a
// valid date, and every route at least one manifest item with positive
// quantity. Deep structural checks against actual routes and products happen
// in the handler, which has repository access.
func NewGenerateDeliveriesCommand(days []DayPlanRequest) (GenerateDeliveriesCommand, error) {
	cmd := GenerateDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDays(days); err != nil {
		return GenerateDeliveriesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrGenerateDeliveriesCommandIsNotConstructed)
}

// Days returns the requested plan grouped by delivery date.
func (c GenerateDeliveriesCommand) Days() []DayPlanRequest {
	return c.days
}

func (c *GenerateDeliveriesCommand) setDays(days []DayPlanRequest) error {
	if len(days) == 0 {
		return ErrPlanDaysAreRequired
	}

	for _, day := range days {
		if err := day.Date.Validate(); err != nil {
			return err
		}
		if len(day.Routes) == 0 {
			return ErrDayRoutesAreRequired
		}
		for _, r := range day.Routes {
			if err := r.RouteID.Validate(); err != nil {
				return err
			}
			if len(r.Items) == 0 {
				return ErrRouteItemsAreRequired
			}
			for _, item := range r.Items {
				if err := item.ProductID.Validate(); err != nil {
					return err
				}
				if item.Quantity <= 0 {
					return ErrItemQuantityIsInvalid
				}
			}
		}
	}

	copied := make([]DayPlanRequest, len(days))
	copy(copied, days)

	c.days = copied
	return nil
}
