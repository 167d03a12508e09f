package http

import (
	"couriermanagement/internal/core/application/usecases/commands"
	"couriermanagement/internal/core/application/usecases/queries"
	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
)

// Error is the uniform error payload returned by all handlers.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ManifestItem references a product and the unit count to carry.
type ManifestItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// RoutePlan names a route and the cargo it should carry.
type RoutePlan struct {
	RouteID uuid.UUID      `json:"routeId"`
	Items   []ManifestItem `json:"items"`
}

// DayPlan groups the routes requested for one delivery date.
type DayPlan struct {
	Date   types.Date  `json:"date"`
	Routes []RoutePlan `json:"routes"`
}

// GeneratePlanRequest is the body of POST /deliveries/generate.
type GeneratePlanRequest struct {
	Days []DayPlan `json:"days"`
}

// UnassignedRoute reports a route the planner could not place.
type UnassignedRoute struct {
	RouteID uuid.UUID  `json:"routeId"`
	Date    types.Date `json:"date"`
	Reason  string     `json:"reason"`
}

// GenerationResult is the outcome of a planning run. Created and unassigned
// routes are reported together; partial success is a normal outcome.
type GenerationResult struct {
	Created    []Delivery        `json:"created"`
	Unassigned []UnassignedRoute `json:"unassigned"`
}

// DeliveryRequest is the body of POST /deliveries and PUT /deliveries/:id.
type DeliveryRequest struct {
	RouteID   uuid.UUID      `json:"routeId"`
	CourierID uuid.UUID      `json:"courierId"`
	VehicleID uuid.UUID      `json:"vehicleId"`
	Date      types.Date     `json:"date"`
	Items     []ManifestItem `json:"items"`
}

// Delivery is the delivery representation returned by all read endpoints.
type Delivery struct {
	ID          uuid.UUID  `json:"id"`
	RouteID     uuid.UUID  `json:"routeId"`
	CourierID   uuid.UUID  `json:"courierId"`
	VehicleID   uuid.UUID  `json:"vehicleId"`
	Date        types.Date `json:"date"`
	WindowStart string     `json:"windowStart"`
	WindowEnd   string     `json:"windowEnd"`
	TotalWeight int        `json:"totalWeight"`
	TotalVolume int        `json:"totalVolume"`
	Status      string     `json:"status"`
}

func toManifestItemRequests(items []ManifestItem) ([]commands.ManifestItemRequest, error) {
	requests := make([]commands.ManifestItemRequest, 0, len(items))
	for _, item := range items {
		productID, err := kernel.UUIDFromBytes(item.ProductID[:])
		if err != nil {
			return nil, err
		}
		requests = append(requests, commands.ManifestItemRequest{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}
	return requests, nil
}

func toDayPlanRequests(days []DayPlan) ([]commands.DayPlanRequest, error) {
	requests := make([]commands.DayPlanRequest, 0, len(days))
	for _, day := range days {
		routes := make([]commands.RoutePlanRequest, 0, len(day.Routes))
		for _, r := range day.Routes {
			routeID, err := kernel.UUIDFromBytes(r.RouteID[:])
			if err != nil {
				return nil, err
			}
			items, err := toManifestItemRequests(r.Items)
			if err != nil {
				return nil, err
			}
			routes = append(routes, commands.RoutePlanRequest{
				RouteID: routeID,
				Items:   items,
			})
		}
		requests = append(requests, commands.DayPlanRequest{
			Date:   kernel.DateFromTime(day.Date.Time),
			Routes: routes,
		})
	}
	return requests, nil
}

func fromReadModel(model queries.DeliveryReadModel) Delivery {
	return Delivery{
		ID:          model.ID.Bytes(),
		RouteID:     model.RouteID.Bytes(),
		CourierID:   model.CourierID.Bytes(),
		VehicleID:   model.VehicleID.Bytes(),
		Date:        types.Date{Time: model.Date.Time()},
		WindowStart: model.WindowStart.String(),
		WindowEnd:   model.WindowEnd.String(),
		TotalWeight: model.TotalWeight,
		TotalVolume: model.TotalVolume,
		Status:      model.Status,
	}
}

func fromGenerationResult(result services.GenerationResult) GenerationResult {
	created := make([]Delivery, 0, len(result.Created))
	for _, d := range result.Created {
		created = append(created, Delivery{
			ID:          d.ID().Bytes(),
			RouteID:     d.RouteID().Bytes(),
			CourierID:   d.CourierID().Bytes(),
			VehicleID:   d.VehicleID().Bytes(),
			Date:        types.Date{Time: d.Date().Time()},
			WindowStart: d.Window().Start().String(),
			WindowEnd:   d.Window().End().String(),
			TotalWeight: d.TotalWeight(),
			TotalVolume: d.TotalVolume(),
			Status:      d.Status().String(),
		})
	}

	unassigned := make([]UnassignedRoute, 0, len(result.Unassigned))
	for _, u := range result.Unassigned {
		unassigned = append(unassigned, UnassignedRoute{
			RouteID: u.RouteID.Bytes(),
			Date:    types.Date{Time: u.Date.Time()},
			Reason:  u.Reason.String(),
		})
	}

	return GenerationResult{Created: created, Unassigned: unassigned}
}
