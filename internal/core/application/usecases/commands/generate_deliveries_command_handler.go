package commands

import (
	"context"
	"errors"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/model/product"
	"couriermanagement/internal/core/domain/model/route"
	"couriermanagement/internal/core/domain/services"
	"couriermanagement/internal/core/ports"
	"couriermanagement/internal/pkg/errs"
)

// GenerateDeliveriesCommandHandler orchestrates batch delivery generation.
// Resolves the requested routes and products, snapshots the resource pools and
// existing commitments, and delegates placement to the assignment planner.
// All created deliveries are persisted in one transaction; partial assignment
// success is a normal outcome, not an error.
//
// Example:
//
//	handler := NewGenerateDeliveriesCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrPlanInvalid) {
//	    // nothing was committed; reject the request
//	}
//	log.Printf("created %d, unassigned %d", len(result.Created), len(result.Unassigned))
type GenerateDeliveriesCommandHandler struct {
	uowFactory PlanningUoWFactory
}

// NewGenerateDeliveriesCommandHandler creates a handler for batch generation.
// Requires a PlanningUoWFactory since generation reads every aggregate type.
func NewGenerateDeliveriesCommandHandler(uowFactory PlanningUoWFactory) GenerateDeliveriesCommandHandler {
	return GenerateDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the generation command. An unknown route or product id
// makes the whole plan invalid (services.ErrPlanInvalid) before any placement
// is attempted; infeasible routes after a valid plan are reported in the
// result instead.
func (h GenerateDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd GenerateDeliveriesCommand,
) (services.GenerationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.GenerationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.GenerationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	plan, err := h.resolvePlan(ctx, cmd, uow)
	if err != nil {
		return services.GenerationResult{}, err
	}

	couriers, err := uow.CourierRepository().GetAll(ctx)
	if err != nil {
		return services.GenerationResult{}, err
	}
	vehicles, err := uow.VehicleRepository().GetAll(ctx)
	if err != nil {
		return services.GenerationResult{}, err
	}

	dates := make([]kernel.Date, 0, len(plan))
	for _, day := range plan {
		dates = append(dates, day.Date)
	}
	existing, err := uow.DeliveryRepository().GetByDates(ctx, dates)
	if err != nil {
		return services.GenerationResult{}, err
	}

	result, err := services.NewAssignmentPlanner().Generate(plan, couriers, vehicles, existing)
	if err != nil {
		return services.GenerationResult{}, err
	}

	deliveryRepo := uow.DeliveryRepository()
	for _, created := range result.Created {
		if err = deliveryRepo.Add(ctx, created); err != nil {
			return services.GenerationResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return services.GenerationResult{}, err
	}

	return result, nil
}

// resolvePlan turns the command's id-based plan into a domain plan with loaded
// routes and built manifests. Unknown references become plan-invalid errors.
func (h GenerateDeliveriesCommandHandler) resolvePlan(
	ctx context.Context,
	cmd GenerateDeliveriesCommand,
	uow PlanningUoW,
) ([]services.DayPlan, error) {
	routeRepo := uow.RouteRepository()
	products, err := h.resolveProducts(ctx, cmd, uow.ProductRepository())
	if err != nil {
		return nil, err
	}

	plan := make([]services.DayPlan, 0, len(cmd.Days()))
	for _, day := range cmd.Days() {
		dayPlan := services.DayPlan{
			Date:   day.Date,
			Routes: make([]services.RoutePlan, 0, len(day.Routes)),
		}

		for _, rr := range day.Routes {
			r, err := routeRepo.Get(ctx, rr.RouteID)
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, &services.PlanInvalidError{Detail: "unknown route " + rr.RouteID.String(), Cause: err}
			}
			if err != nil {
				return nil, err
			}

			manifest, err := buildManifest(rr.Items, products)
			if err != nil {
				return nil, err
			}

			dayPlan.Routes = append(dayPlan.Routes, services.RoutePlan{
				Route:    r,
				Manifest: manifest,
			})
		}

		plan = append(plan, dayPlan)
	}

	return plan, nil
}

// resolveProducts loads every product referenced anywhere in the plan, once.
func (h GenerateDeliveriesCommandHandler) resolveProducts(
	ctx context.Context,
	cmd GenerateDeliveriesCommand,
	repo ports.ProductRepository,
) (map[kernel.UUID]*product.Product, error) {
	seen := make(map[kernel.UUID]bool)
	ids := make([]kernel.UUID, 0)
	for _, day := range cmd.Days() {
		for _, rr := range day.Routes {
			for _, item := range rr.Items {
				if !seen[item.ProductID] {
					seen[item.ProductID] = true
					ids = append(ids, item.ProductID)
				}
			}
		}
	}

	loaded, err := repo.GetByIDs(ctx, ids)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, &services.PlanInvalidError{Detail: "unknown product in manifest", Cause: err}
	}
	if err != nil {
		return nil, err
	}

	products := make(map[kernel.UUID]*product.Product, len(loaded))
	for _, p := range loaded {
		products[p.ID()] = p
	}
	return products, nil
}

// buildManifest assembles a domain manifest from request items using the
// preloaded product map.
func buildManifest(
	items []ManifestItemRequest,
	products map[kernel.UUID]*product.Product,
) (route.Manifest, error) {
	lines := make([]route.ManifestItem, 0, len(items))
	for _, item := range items {
		p, ok := products[item.ProductID]
		if !ok {
			return route.Manifest{}, &services.PlanInvalidError{
				Detail: "unknown product " + item.ProductID.String(),
			}
		}

		line, err := route.NewManifestItem(p, item.Quantity)
		if err != nil {
			return route.Manifest{}, err
		}
		lines = append(lines, line)
	}

	return route.NewManifest(lines)
}
