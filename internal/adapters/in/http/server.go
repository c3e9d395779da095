// Package http exposes the application's use cases over a REST API.
// Handlers translate JSON contracts into commands and queries, and map
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	assignShipmentHandler commands.AssignShipmentCommandHandler
	createRouteHandler    commands.CreateRouteCommandHandler
	createCarrierHandler  commands.CreateCarrierCommandHandler

	// Query handlers
	getUserShipmentsHandler    queries.GetUserShipmentsQueryHandler
	getAllShipmentsHandler     queries.GetAllShipmentsQueryHandler
	getPendingShipmentsHandler queries.GetPendingShipmentsQueryHandler
	getShipmentHandler         queries.GetShipmentQueryHandler
	getShipmentHistoryHandler  queries.GetShipmentHistoryQueryHandler
	getAllRoutesHandler        queries.GetAllRoutesQueryHandler
	getAllCarriersHandler      queries.GetAllCarriersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	assignShipmentHandler commands.AssignShipmentCommandHandler,
	createRouteHandler commands.CreateRouteCommandHandler,
	createCarrierHandler commands.CreateCarrierCommandHandler,
	getUserShipmentsHandler queries.GetUserShipmentsQueryHandler,
	getAllShipmentsHandler queries.GetAllShipmentsQueryHandler,
	getPendingShipmentsHandler queries.GetPendingShipmentsQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getShipmentHistoryHandler queries.GetShipmentHistoryQueryHandler,
	getAllRoutesHandler queries.GetAllRoutesQueryHandler,
	getAllCarriersHandler queries.GetAllCarriersQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:      createShipmentHandler,
		assignShipmentHandler:      assignShipmentHandler,
		createRouteHandler:         createRouteHandler,
		createCarrierHandler:       createCarrierHandler,
		getUserShipmentsHandler:    getUserShipmentsHandler,
		getAllShipmentsHandler:     getAllShipmentsHandler,
		getPendingShipmentsHandler: getPendingShipmentsHandler,
		getShipmentHandler:         getShipmentHandler,
		getShipmentHistoryHandler:  getShipmentHistoryHandler,
		getAllRoutesHandler:        getAllRoutesHandler,
		getAllCarriersHandler:      getAllCarriersHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/shipments", s.CreateShipment)
	v1.GET("/shipments", s.GetUserShipments)
	v1.GET("/shipments/all", s.GetAllShipments)
	v1.GET("/shipments/pending", s.GetPendingShipments)
	v1.GET("/shipments/:id", s.GetShipment)
	v1.GET("/shipments/:id/history", s.GetShipmentHistory)
	v1.POST("/shipments/:id/assign", s.AssignShipment)
	v1.GET("/routes", s.GetRoutes)
	v1.POST("/routes", s.CreateRoute)
	v1.GET("/carriers", s.GetCarriers)
	v1.POST("/carriers", s.CreateCarrier)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateShipment handles POST /api/v1/shipments - registers a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var body NewShipment
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	userID, err := kernel.UUIDFromBytes(body.UserID[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}

	shipmentID := kernel.NewUUID()

	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID,
		userID,
		body.OriginAddress,
		body.DestinationAddress,
		body.Package.Weight,
		body.Package.Length,
		body.Package.Width,
		body.Package.Height,
		body.Package.ProductType,
	)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return s.respondWithShipment(ctx, shipmentID, http.StatusCreated)
}

// GetUserShipments handles GET /api/v1/shipments?userId=... - retrieves one
// customer's shipments.
func (s *Server) GetUserShipments(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.QueryParam("userId"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid or missing userId parameter")
	}

	query, err := queries.NewGetUserShipmentsQuery(userID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid userId parameter")
	}

	shipments, err := s.getUserShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentContracts(shipments))
}

// GetAllShipments handles GET /api/v1/shipments/all - the operator view.
func (s *Server) GetAllShipments(ctx echo.Context) error {
	query := queries.NewGetAllShipmentsQuery()

	shipments, err := s.getAllShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentContracts(shipments))
}

// GetPendingShipments handles GET /api/v1/shipments/pending - shipments
// still waiting for assignment.
func (s *Server) GetPendingShipments(ctx echo.Context) error {
	query := queries.NewGetPendingShipmentsQuery()

	shipments, err := s.getPendingShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentContracts(shipments))
}

// GetShipment handles GET /api/v1/shipments/:id - one shipment with its
// assignment details and history.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid shipment id")
	}

	return s.respondWithShipment(ctx, shipmentID, http.StatusOK)
}

// GetShipmentHistory handles GET /api/v1/shipments/:id/history.
func (s *Server) GetShipmentHistory(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentHistoryQuery(shipmentID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid shipment id")
	}

	history, err := s.getShipmentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toHistoryContracts(history))
}

// AssignShipment handles POST /api/v1/shipments/:id/assign - binds a route
// and carrier to a pending shipment.
func (s *Server) AssignShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid shipment id")
	}

	var body AssignShipment
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	routeID, err := kernel.UUIDFromBytes(body.RouteID[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid route id: "+err.Error())
	}

	carrierID, err := kernel.UUIDFromBytes(body.CarrierID[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid carrier id: "+err.Error())
	}

	cmd, err := commands.NewAssignShipmentCommand(shipmentID, routeID, carrierID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return s.respondWithShipment(ctx, shipmentID, http.StatusOK)
}

// GetRoutes handles GET /api/v1/routes - retrieves the route catalog.
func (s *Server) GetRoutes(ctx echo.Context) error {
	query := queries.NewGetAllRoutesQuery()

	routes, err := s.getAllRoutesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]Route, len(routes))
	for i, rt := range routes {
		response[i] = toRouteContract(rt)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRoute handles POST /api/v1/routes - adds a route to the catalog.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var body NewRoute
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	routeID := kernel.NewUUID()

	cmd, err := commands.NewCreateRouteCommand(
		routeID,
		body.Name,
		body.StartPoint,
		body.EndPoint,
		body.EstimatedDuration,
	)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid route data: "+err.Error())
	}

	if handleErr := s.createRouteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Route{
		ID:                routeID.Bytes(),
		Name:              body.Name,
		StartPoint:        body.StartPoint,
		EndPoint:          body.EndPoint,
		EstimatedDuration: body.EstimatedDuration,
	})
}

// GetCarriers handles GET /api/v1/carriers - retrieves the fleet.
func (s *Server) GetCarriers(ctx echo.Context) error {
	query := queries.NewGetAllCarriersQuery()

	carriers, err := s.getAllCarriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]Carrier, len(carriers))
	for i, car := range carriers {
		response[i] = toCarrierContract(car)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCarrier handles POST /api/v1/carriers - adds a carrier to the fleet.
// Carriers start available unless the body says otherwise.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var body NewCarrier
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	available := true
	if body.Available != nil {
		available = *body.Available
	}

	carrierID := kernel.NewUUID()

	cmd, err := commands.NewCreateCarrierCommand(
		carrierID,
		body.Name,
		body.VehicleType,
		body.Capacity,
		available,
	)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid carrier data: "+err.Error())
	}

	if handleErr := s.createCarrierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Carrier{
		ID:          carrierID.Bytes(),
		Name:        body.Name,
		VehicleType: body.VehicleType,
		Capacity:    body.Capacity,
		Available:   available,
	})
}

// respondWithShipment reads the denormalized view of one shipment and writes
// it with the given status code.
func (s *Server) respondWithShipment(ctx echo.Context, shipmentID kernel.UUID, code int) error {
	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid shipment id")
	}

	detail, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(code, toShipmentDetailContract(detail))
}

// writeDomainError maps a use case error onto its HTTP status code.
func writeDomainError(ctx echo.Context, err error) error {
	return writeError(ctx, statusFromError(err), err.Error())
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
