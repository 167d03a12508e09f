// Package http exposes the delivery planning use cases over a REST surface.
// Handlers translate transport payloads into commands and queries and map
// domain rejections onto HTTP status codes. Authorization is assumed to be
// handled upstream.
package http

import (
	"errors"
	"net/http"

	"couriermanagement/internal/core/application/usecases/commands"
	"couriermanagement/internal/core/application/usecases/queries"
	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/services"
	"couriermanagement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	generateDeliveriesHandler commands.GenerateDeliveriesCommandHandler
	createDeliveryHandler     commands.CreateDeliveryCommandHandler
	updateDeliveryHandler     commands.UpdateDeliveryCommandHandler
	deleteDeliveryHandler     commands.DeleteDeliveryCommandHandler

	// Query handlers
	searchDeliveriesHandler queries.SearchDeliveriesQueryHandler
	getDeliveryByIDHandler  queries.GetDeliveryByIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	generateDeliveriesHandler commands.GenerateDeliveriesCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateDeliveryHandler commands.UpdateDeliveryCommandHandler,
	deleteDeliveryHandler commands.DeleteDeliveryCommandHandler,
	searchDeliveriesHandler queries.SearchDeliveriesQueryHandler,
	getDeliveryByIDHandler queries.GetDeliveryByIDQueryHandler,
) *Server {
	return &Server{
		generateDeliveriesHandler: generateDeliveriesHandler,
		createDeliveryHandler:     createDeliveryHandler,
		updateDeliveryHandler:     updateDeliveryHandler,
		deleteDeliveryHandler:     deleteDeliveryHandler,
		searchDeliveriesHandler:   searchDeliveriesHandler,
		getDeliveryByIDHandler:    getDeliveryByIDHandler,
	}
}

// RegisterRoutes binds all delivery endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/deliveries/generate", s.GenerateDeliveries)
	e.GET("/api/v1/deliveries", s.SearchDeliveries)
	e.POST("/api/v1/deliveries", s.CreateDelivery)
	e.GET("/api/v1/deliveries/:id", s.GetDelivery)
	e.PUT("/api/v1/deliveries/:id", s.UpdateDelivery)
	e.DELETE("/api/v1/deliveries/:id", s.DeleteDelivery)
}

// GenerateDeliveries handles POST /api/v1/deliveries/generate - batch-generates
// delivery assignments for a multi-day plan.
func (s *Server) GenerateDeliveries(ctx echo.Context) error {
	var request GeneratePlanRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	days, err := toDayPlanRequests(request.Days)
	if err != nil {
		return badRequest(ctx, "Invalid plan data: "+err.Error())
	}

	cmd, err := commands.NewGenerateDeliveriesCommand(days)
	if err != nil {
		return badRequest(ctx, "Invalid plan data: "+err.Error())
	}

	result, err := s.generateDeliveriesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromGenerationResult(result))
}

// SearchDeliveries handles GET /api/v1/deliveries - retrieves deliveries
// matching the optional date, courierId and status filters.
func (s *Server) SearchDeliveries(ctx echo.Context) error {
	var date *kernel.Date
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := kernel.DateFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid date filter: "+err.Error())
		}
		date = &parsed
	}

	var courierID *kernel.UUID
	if raw := ctx.QueryParam("courierId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid courierId filter: "+err.Error())
		}
		courierID = &parsed
	}

	var status *delivery.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := delivery.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}
		status = &parsed
	}

	query, err := queries.NewSearchDeliveriesQuery(date, courierID, status)
	if err != nil {
		return badRequest(ctx, "Invalid search filters: "+err.Error())
	}

	models, err := s.searchDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	response := make([]Delivery, 0, len(models))
	for _, model := range models {
		response = append(response, fromReadModel(model))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDelivery handles POST /api/v1/deliveries - manually places a single
// delivery with an explicit assignment.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var request DeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryID := kernel.NewUUID()
	cmd, err := buildCreateCommand(deliveryID, request)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	query, err := queries.NewGetDeliveryByIDQuery(deliveryID)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	model, err := s.getDeliveryByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromReadModel(model))
}

// GetDelivery handles GET /api/v1/deliveries/:id - retrieves one delivery.
func (s *Server) GetDelivery(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	query, err := queries.NewGetDeliveryByIDQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	model, err := s.getDeliveryByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromReadModel(model))
}

// UpdateDelivery handles PUT /api/v1/deliveries/:id - reassigns a delivery
// while it is still editable.
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var request DeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := buildUpdateCommand(id, request)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDelivery handles DELETE /api/v1/deliveries/:id - removes a delivery
// while it is still editable.
func (s *Server) DeleteDelivery(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	cmd, err := commands.NewDeleteDeliveryCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	if handleErr := s.deleteDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func buildCreateCommand(id kernel.UUID, request DeliveryRequest) (commands.CreateDeliveryCommand, error) {
	routeID, courierID, vehicleID, items, err := convertAssignment(request)
	if err != nil {
		return commands.CreateDeliveryCommand{}, err
	}

	return commands.NewCreateDeliveryCommand(
		id, routeID, courierID, vehicleID,
		kernel.DateFromTime(request.Date.Time), items,
	)
}

func buildUpdateCommand(id kernel.UUID, request DeliveryRequest) (commands.UpdateDeliveryCommand, error) {
	routeID, courierID, vehicleID, items, err := convertAssignment(request)
	if err != nil {
		return commands.UpdateDeliveryCommand{}, err
	}

	return commands.NewUpdateDeliveryCommand(
		id, routeID, courierID, vehicleID,
		kernel.DateFromTime(request.Date.Time), items,
	)
}

func convertAssignment(request DeliveryRequest) (
	routeID, courierID, vehicleID kernel.UUID,
	items []commands.ManifestItemRequest,
	err error,
) {
	routeID, err = kernel.UUIDFromBytes(request.RouteID[:])
	if err != nil {
		return
	}
	courierID, err = kernel.UUIDFromBytes(request.CourierID[:])
	if err != nil {
		return
	}
	vehicleID, err = kernel.UUIDFromBytes(request.VehicleID[:])
	if err != nil {
		return
	}
	items, err = toManifestItemRequests(request.Items)
	return
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapDomainError translates use case failures onto the HTTP status taxonomy:
// unknown objects are 404, lifecycle denials 403, rejected candidates and
// invalid plans 400, anything else 500.
func mapDomainError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrStatusLocked),
		errors.Is(err, services.ErrEditWindowClosed):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrOutsideShift),
		errors.Is(err, services.ErrTimeConflict),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrPlanInvalid):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
