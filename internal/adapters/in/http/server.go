// Package http exposes the fulfillment API over echo. The server is a thin
// shim: it parses requests, delegates to command and query handlers, and maps
// domain errors onto status codes.
package http

import (
	"errors"
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/core/domain/services"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	assignTailorsHandler   commands.AssignTailorsCommandHandler
	createTailorHandler    commands.CreateTailorCommandHandler

	// Query handlers
	validNextStatesHandler queries.GetValidNextStatesQueryHandler
	orderTimelineHandler   queries.GetOrderTimelineQueryHandler
	tailorsHandler         queries.GetTailorsQueryHandler
	recommendationsHandler queries.GetTailorRecommendationsQueryHandler
	qcStationsHandler      queries.GetQcStationsQueryHandler
	vansHandler            queries.GetVansQueryHandler
	flightsHandler         queries.GetFlightsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	assignTailorsHandler commands.AssignTailorsCommandHandler,
	createTailorHandler commands.CreateTailorCommandHandler,
	validNextStatesHandler queries.GetValidNextStatesQueryHandler,
	orderTimelineHandler queries.GetOrderTimelineQueryHandler,
	tailorsHandler queries.GetTailorsQueryHandler,
	recommendationsHandler queries.GetTailorRecommendationsQueryHandler,
	qcStationsHandler queries.GetQcStationsQueryHandler,
	vansHandler queries.GetVansQueryHandler,
	flightsHandler queries.GetFlightsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		assignTailorsHandler:   assignTailorsHandler,
		createTailorHandler:    createTailorHandler,
		validNextStatesHandler: validNextStatesHandler,
		orderTimelineHandler:   orderTimelineHandler,
		tailorsHandler:         tailorsHandler,
		recommendationsHandler: recommendationsHandler,
		qcStationsHandler:      qcStationsHandler,
		vansHandler:            vansHandler,
		flightsHandler:         flightsHandler,
	}
}

// RegisterRoutes binds all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.PATCH("/orders/:id/state", s.TransitionOrder)
	api.GET("/orders/:id/state", s.GetValidNextStates)
	api.GET("/orders/:id/timeline", s.GetOrderTimeline)

	api.POST("/logistics/assign-tailors", s.AssignTailors)
	api.POST("/logistics/tailors", s.CreateTailor)
	api.GET("/logistics/tailors", s.GetTailors)
	api.GET("/logistics/recommendations", s.GetTailorRecommendations)
	api.GET("/logistics/qc-stations", s.GetQcStations)
	api.GET("/logistics/vans", s.GetVans)
	api.GET("/logistics/flights", s.GetFlights)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a paid order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if req.ID != "" {
		parsed, err := kernel.UUIDFromString(req.ID)
		if err != nil {
			return badRequest(ctx, "Invalid order ID: "+err.Error())
		}
		orderID = parsed
	}

	total, err := kernel.MoneyFromString(req.TotalAmount, req.TotalCurrency)
	if err != nil {
		return badRequest(ctx, "Invalid order total: "+err.Error())
	}

	items := make([]commands.ItemSpec, 0, len(req.Items))
	for _, item := range req.Items {
		unitPrice, priceErr := kernel.MoneyFromString(item.UnitPriceAmount, item.UnitPriceCurrency)
		if priceErr != nil {
			return badRequest(ctx, "Invalid item price: "+priceErr.Error())
		}
		items = append(items, commands.ItemSpec{
			Quantity:     item.Quantity,
			UnitPrice:    unitPrice,
			IsBackupSuit: item.IsBackupSuit,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, order.Track(req.Track), total, req.Deadline, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, gorm.ErrDuplicatedKey) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "Order already exists",
			})
		}
		if isDomainRejection(handleErr) {
			return badRequest(ctx, handleErr.Error())
		}
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// TransitionOrder handles PATCH /api/v1/orders/:id/state - moves an order to
// a target state.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req TransitionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, order.State(req.Target), req.Actor, req.Note)
	if err != nil {
		return badRequest(ctx, "Invalid transition request: "+err.Error())
	}

	if handleErr := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case isNotFound(handleErr):
			return notFound(ctx, "Order not found")
		case errors.Is(handleErr, commands.ErrNoLogisticsResource):
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: handleErr.Error(),
			})
		case errors.Is(handleErr, order.ErrInvalidTransition),
			errors.Is(handleErr, order.ErrTerminalStateViolation),
			isDomainRejection(handleErr):
			return badRequest(ctx, handleErr.Error())
		default:
			return internalError(ctx, "Failed to transition order")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetValidNextStates handles GET /api/v1/orders/:id/state - reports the
// current state and reachable next states.
func (s *Server) GetValidNextStates(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetValidNextStatesQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.validNextStatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if isNotFound(err) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to retrieve order state")
	}

	nextStates := make([]StateOptionResponse, len(resp.NextStates))
	for i, option := range resp.NextStates {
		nextStates[i] = StateOptionResponse{State: string(option.State), Label: option.Label}
	}

	return ctx.JSON(http.StatusOK, ValidNextStatesResponse{
		OrderID: resp.OrderID.String(),
		Track:   string(resp.Track),
		CurrentState: StateOptionResponse{
			State: string(resp.CurrentState.State),
			Label: resp.CurrentState.Label,
		},
		IsTerminal: resp.IsTerminal,
		NextStates: nextStates,
	})
}

// GetOrderTimeline handles GET /api/v1/orders/:id/timeline - returns the
// order's append-only state history.
func (s *Server) GetOrderTimeline(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderTimelineQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.orderTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve order timeline")
	}

	response := make([]TimelineEntryResponse, len(entries))
	for i, entry := range entries {
		var fromState *string
		if entry.FromState != nil {
			from := string(*entry.FromState)
			fromState = &from
		}
		response[i] = TimelineEntryResponse{
			FromState:  fromState,
			ToState:    string(entry.ToState),
			ToLabel:    entry.ToLabel,
			Actor:      entry.Actor,
			Note:       entry.Note,
			OccurredAt: entry.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignTailors handles POST /api/v1/logistics/assign-tailors - selects and
// commits a primary/backup tailor pair for one garment.
func (s *Server) AssignTailors(ctx echo.Context) error {
	var req AssignTailorsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderItemID, err := kernel.UUIDFromString(req.OrderItemID)
	if err != nil {
		return badRequest(ctx, "Invalid order item ID")
	}

	cmd, err := commands.NewAssignTailorsCommand(orderItemID, req.ZoneID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.assignTailorsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var alreadyAssigned *order.TailorsAlreadyAssignedError
		var notEnough *services.NotEnoughTailorsError
		switch {
		case isNotFound(err):
			return notFound(ctx, "Order item not found")
		case errors.As(err, &alreadyAssigned):
			return ctx.JSON(http.StatusConflict, AlreadyAssignedResponse{
				Code:            http.StatusConflict,
				Message:         "Tailors already assigned",
				PrimaryTailorID: alreadyAssigned.PrimaryTailorID.String(),
				BackupTailorID:  alreadyAssigned.BackupTailorID.String(),
			})
		case errors.As(err, &notEnough):
			return ctx.JSON(http.StatusServiceUnavailable, InsufficientCapacityResponse{
				Code:      http.StatusServiceUnavailable,
				Message:   "Not enough available tailors",
				Available: notEnough.Available,
				Required:  notEnough.Required,
			})
		case errors.Is(err, tailor.ErrNoSpareCapacity):
			return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Code:    http.StatusServiceUnavailable,
				Message: "Tailor capacity exhausted during assignment",
			})
		default:
			return internalError(ctx, "Failed to assign tailors")
		}
	}

	return ctx.JSON(http.StatusOK, AssignTailorsResponse{
		OrderItemID: orderItemID.String(),
		Primary:     toAssignedTailor(result.Primary),
		Backup:      toAssignedTailor(result.Backup),
	})
}

// CreateTailor handles POST /api/v1/logistics/tailors - onboards a tailor.
func (s *Server) CreateTailor(ctx echo.Context) error {
	var req CreateTailorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tailorID := kernel.NewUUID()
	if req.ID != "" {
		parsed, err := kernel.UUIDFromString(req.ID)
		if err != nil {
			return badRequest(ctx, "Invalid tailor ID: "+err.Error())
		}
		tailorID = parsed
	}

	cmd, err := commands.NewCreateTailorCommand(
		tailorID, req.Name, tailor.SkillLevel(req.SkillLevel),
		req.QCPassRate, req.MaxConcurrentJobs, req.ZoneID)
	if err != nil {
		return badRequest(ctx, "Invalid tailor data: "+err.Error())
	}

	if handleErr := s.createTailorHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, gorm.ErrDuplicatedKey) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "Tailor already exists",
			})
		}
		if isDomainRejection(handleErr) {
			return badRequest(ctx, handleErr.Error())
		}
		return internalError(ctx, "Failed to create tailor")
	}

	return ctx.JSON(http.StatusCreated, CreateTailorResponse{ID: tailorID.String()})
}

// GetTailors handles GET /api/v1/logistics/tailors - lists the tailor pool.
func (s *Server) GetTailors(ctx echo.Context) error {
	availableOnly := ctx.QueryParam("available") == "true"

	query, err := queries.NewGetTailorsQuery(
		availableOnly, ctx.QueryParam("zoneId"), tailor.SkillLevel(ctx.QueryParam("skillLevel")))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	tailors, err := s.tailorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve tailors")
	}

	response := make([]TailorResponse, len(tailors))
	for i, t := range tailors {
		response[i] = TailorResponse{
			ID:                t.ID.String(),
			Name:              t.Name,
			SkillLevel:        string(t.SkillLevel),
			QCPassRate:        t.QCPassRate,
			MaxConcurrentJobs: t.MaxConcurrentJobs,
			CurrentJobCount:   t.CurrentJobCount,
			ZoneID:            t.Zone,
			IsActive:          t.IsActive,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTailorRecommendations handles GET /api/v1/logistics/recommendations -
// lists ranked candidates with score breakdowns, best first.
func (s *Server) GetTailorRecommendations(ctx echo.Context) error {
	query := queries.NewGetTailorRecommendationsQuery(ctx.QueryParam("zoneId"))

	recommendations, err := s.recommendationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve recommendations")
	}

	response := make([]TailorRecommendationResponse, len(recommendations))
	for i, rec := range recommendations {
		response[i] = TailorRecommendationResponse{
			TailorID:          rec.TailorID.String(),
			Name:              rec.Name,
			SkillLevel:        string(rec.SkillLevel),
			QCPassRate:        rec.QCPassRate,
			CurrentJobCount:   rec.CurrentJobCount,
			MaxConcurrentJobs: rec.MaxConcurrentJobs,
			Total:             rec.Total,
			QCFactor:          rec.QCFactor,
			LoadFactor:        rec.LoadFactor,
			SkillFactor:       rec.SkillFactor,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetQcStations handles GET /api/v1/logistics/qc-stations.
func (s *Server) GetQcStations(ctx echo.Context) error {
	query := queries.NewGetQcStationsQuery(ctx.QueryParam("available") == "true", ctx.QueryParam("zoneId"))

	stations, err := s.qcStationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve QC stations")
	}

	response := make([]QcStationResponse, len(stations))
	for i, station := range stations {
		response[i] = QcStationResponse{
			ID:          station.ID.String(),
			Name:        station.Name,
			ZoneID:      station.Zone,
			Capacity:    station.Capacity,
			CurrentLoad: station.CurrentLoad,
			IsActive:    station.IsActive,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVans handles GET /api/v1/logistics/vans.
func (s *Server) GetVans(ctx echo.Context) error {
	query := queries.NewGetVansQuery(ctx.QueryParam("available") == "true")

	vans, err := s.vansHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve vans")
	}

	response := make([]VanResponse, len(vans))
	for i, van := range vans {
		response[i] = VanResponse{
			ID:           van.ID.String(),
			LicensePlate: van.LicensePlate,
			DriverName:   van.DriverName,
			Capacity:     van.Capacity,
			CurrentLoad:  van.CurrentLoad,
			Status:       string(van.Status),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFlights handles GET /api/v1/logistics/flights.
func (s *Server) GetFlights(ctx echo.Context) error {
	query := queries.NewGetFlightsQuery(ctx.QueryParam("loadable") == "true")

	flights, err := s.flightsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve flights")
	}

	response := make([]FlightResponse, len(flights))
	for i, flight := range flights {
		response[i] = FlightResponse{
			ID:                 flight.ID.String(),
			FlightNumber:       flight.FlightNumber,
			DepartureAirport:   flight.DepartureAirport,
			ArrivalAirport:     flight.ArrivalAirport,
			ScheduledDeparture: flight.ScheduledDeparture,
			Capacity:           flight.Capacity,
			GarmentsOnBoard:    flight.GarmentsOnBoard,
			Status:             string(flight.Status),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func toAssignedTailor(ranked services.RankedTailor) AssignedTailorResponse {
	return AssignedTailorResponse{
		TailorID:    ranked.Tailor.ID().String(),
		Name:        ranked.Tailor.Name(),
		SkillLevel:  string(ranked.Tailor.SkillLevel()),
		Total:       ranked.Score.Total,
		QCFactor:    ranked.Score.QCFactor,
		LoadFactor:  ranked.Score.LoadFactor,
		SkillFactor: ranked.Score.SkillFactor,
	}
}

// isNotFound matches both the storage-level and command-level lookup misses.
func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, commands.ErrOrderNotFound) ||
		errors.Is(err, commands.ErrOrderItemNotFound)
}

// isDomainRejection matches validation failures raised by value objects and
// aggregates, which callers can fix by changing the request.
func isDomainRejection(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
