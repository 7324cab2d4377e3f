package http

import (
	"errors"
	"net/http"

	"freshly/internal/core/application/usecases/commands"
	"freshly/internal/core/application/usecases/queries"
	"freshly/internal/core/domain/model/driver"
	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/core/domain/model/request"
	"freshly/internal/core/domain/services"
	"freshly/internal/generated/servers"
	"freshly/internal/observability"
	"freshly/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases and maps
// domain errors onto the error contract: 404 for missing driver/request,
// 400 with the three weight diagnostics for capacity overruns, 409 for a
// lost acceptance race, 403 for a disallowed role.
type Server struct {
	// Command handlers
	createRequestHandler  commands.CreateDeliveryRequestCommandHandler
	acceptRequestHandler  commands.AcceptRequestCommandHandler
	markDeliveredHandler  commands.MarkDeliveredCommandHandler
	registerDriverHandler commands.RegisterDriverCommandHandler

	// Query handlers
	getPendingRequestsHandler  queries.GetPendingRequestsQueryHandler
	getAcceptedRequestsHandler queries.GetAcceptedRequestsQueryHandler
	getDriverCapacityHandler   queries.GetDriverCapacityQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRequestHandler commands.CreateDeliveryRequestCommandHandler,
	acceptRequestHandler commands.AcceptRequestCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	getPendingRequestsHandler queries.GetPendingRequestsQueryHandler,
	getAcceptedRequestsHandler queries.GetAcceptedRequestsQueryHandler,
	getDriverCapacityHandler queries.GetDriverCapacityQueryHandler,
) *Server {
	return &Server{
		createRequestHandler:       createRequestHandler,
		acceptRequestHandler:       acceptRequestHandler,
		markDeliveredHandler:       markDeliveredHandler,
		registerDriverHandler:      registerDriverHandler,
		getPendingRequestsHandler:  getPendingRequestsHandler,
		getAcceptedRequestsHandler: getAcceptedRequestsHandler,
		getDriverCapacityHandler:   getDriverCapacityHandler,
	}
}

// CreateRequest handles POST /create - a buyer creates a pending delivery request.
func (s *Server) CreateRequest(ctx echo.Context, params servers.CreateRequestParams) error {
	var body servers.CreateRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromBytes(params.XUserId[:])
	if err != nil {
		return badRequest(ctx, "Invalid caller id: "+err.Error())
	}
	farmerID, err := kernel.UUIDFromBytes(body.FarmerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid farmer id: "+err.Error())
	}
	weight, err := kernel.NewWeight(body.Weight)
	if err != nil {
		return badRequest(ctx, "Invalid weight: "+err.Error())
	}

	cmd, err := commands.NewCreateDeliveryRequestCommand(
		kernel.NewUUID(), buyerID, farmerID, weight, body.Pickup, body.DropOff)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	created, err := s.createRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	observability.RequestsCreatedTotal.Inc()
	return ctx.JSON(http.StatusCreated, toDeliveryRequest(created))
}

// AcceptRequest handles POST /accept - a driver commits to a pending request.
func (s *Server) AcceptRequest(ctx echo.Context, params servers.AcceptRequestParams) error {
	var body servers.AcceptRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromBytes(params.XUserId[:])
	if err != nil {
		return badRequest(ctx, "Invalid caller id: "+err.Error())
	}
	requestID, err := kernel.UUIDFromBytes(body.RequestId[:])
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	cmd, err := commands.NewAcceptRequestCommand(driverID, requestID)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	accepted, err := s.acceptRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	observability.RequestsAcceptedTotal.Inc()
	return ctx.JSON(http.StatusCreated, toDeliveryRequest(accepted))
}

// MarkDelivered handles POST /delivered - the owning driver completes a request.
func (s *Server) MarkDelivered(ctx echo.Context, params servers.MarkDeliveredParams) error {
	var body servers.MarkDeliveredJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromBytes(params.XUserId[:])
	if err != nil {
		return badRequest(ctx, "Invalid caller id: "+err.Error())
	}
	requestID, err := kernel.UUIDFromBytes(body.RequestId[:])
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	cmd, err := commands.NewMarkDeliveredCommand(driverID, requestID)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	delivered, err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	observability.RequestsDeliveredTotal.Inc()
	return ctx.JSON(http.StatusOK, toDeliveryRequest(delivered))
}

// RegisterDriver handles POST /drivers - registers a new driver.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body servers.RegisterDriverJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	capacity, err := kernel.NewWeight(body.VehicleCapacity)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle capacity: "+err.Error())
	}

	cmd, err := commands.NewRegisterDriverCommand(body.Name, body.Phone, capacity)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	registered, err := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDriver(registered))
}

// GetPendingRequests handles GET /pendingrequests - role-filtered pending pool.
func (s *Server) GetPendingRequests(ctx echo.Context, params servers.GetPendingRequestsParams) error {
	callerID, err := kernel.UUIDFromBytes(params.XUserId[:])
	if err != nil {
		return badRequest(ctx, "Invalid caller id: "+err.Error())
	}
	role, err := kernel.RoleFromString(params.XUserRole)
	if err != nil {
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "Role is not allowed",
		})
	}

	query, err := queries.NewGetPendingRequestsQuery(callerID, role)
	if err != nil {
		return badRequest(ctx, "Invalid query data: "+err.Error())
	}

	pending, err := s.getPendingRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.DeliveryRequest, len(pending))
	for i, req := range pending {
		response[i] = servers.DeliveryRequest{
			Id:        req.ID.Bytes(),
			BuyerId:   req.BuyerID.Bytes(),
			FarmerId:  req.FarmerID.Bytes(),
			Weight:    req.Weight,
			Pickup:    req.Pickup,
			DropOff:   req.DropOff,
			Status:    servers.Pending,
			CreatedAt: req.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAcceptedRequests handles GET /driveraccepted - the caller's committed load.
func (s *Server) GetAcceptedRequests(ctx echo.Context, params servers.GetAcceptedRequestsParams) error {
	driverID, err := kernel.UUIDFromBytes(params.XUserId[:])
	if err != nil {
		return badRequest(ctx, "Invalid caller id: "+err.Error())
	}

	query, err := queries.NewGetAcceptedRequestsQuery(driverID)
	if err != nil {
		return badRequest(ctx, "Invalid query data: "+err.Error())
	}

	accepted, err := s.getAcceptedRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	callerID := params.XUserId
	response := make([]servers.DeliveryRequest, len(accepted))
	for i, req := range accepted {
		response[i] = servers.DeliveryRequest{
			Id:        req.ID.Bytes(),
			BuyerId:   req.BuyerID.Bytes(),
			FarmerId:  req.FarmerID.Bytes(),
			DriverId:  &callerID,
			Weight:    req.Weight,
			Pickup:    req.Pickup,
			DropOff:   req.DropOff,
			Status:    servers.Accepted,
			CreatedAt: req.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverCapacity handles GET /capacity - the caller's capacity snapshot.
func (s *Server) GetDriverCapacity(ctx echo.Context, params servers.GetDriverCapacityParams) error {
	driverID, err := kernel.UUIDFromBytes(params.XUserId[:])
	if err != nil {
		return badRequest(ctx, "Invalid caller id: "+err.Error())
	}

	query, err := queries.NewGetDriverCapacityQuery(driverID)
	if err != nil {
		return badRequest(ctx, "Invalid query data: "+err.Error())
	}

	capacity, err := s.getDriverCapacityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DriverCapacity{
		VehicleCapacity:    capacity.VehicleCapacity,
		CurrentTotalWeight: capacity.CurrentTotalWeight,
	})
}

// writeError maps a use case error onto the HTTP error contract.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var capacityErr *services.CapacityExceededError
	switch {
	case errors.As(err, &capacityErr):
		observability.AdmissionRejectionsTotal.WithLabelValues("capacity_exceeded").Inc()
		return ctx.JSON(http.StatusBadRequest, servers.CapacityExceededError{
			Code:               http.StatusBadRequest,
			Message:            capacityErr.Error(),
			CurrentTotalWeight: capacityErr.CurrentLoad.Kilograms(),
			RequestWeight:      capacityErr.RequestWeight.Kilograms(),
			VehicleCapacity:    capacityErr.VehicleCapacity.Kilograms(),
		})
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrRequestNotOwnedByDriver):
		observability.AdmissionRejectionsTotal.WithLabelValues("not_found").Inc()
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrRequestAlreadyTaken):
		observability.AdmissionRejectionsTotal.WithLabelValues("already_taken").Inc()
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, queries.ErrRoleIsNotAllowed):
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func toDeliveryRequest(req *request.DeliveryRequest) servers.DeliveryRequest {
	response := servers.DeliveryRequest{
		Id:        req.ID().Bytes(),
		BuyerId:   req.BuyerID().Bytes(),
		FarmerId:  req.FarmerID().Bytes(),
		Weight:    req.Weight().Kilograms(),
		Pickup:    req.Pickup(),
		DropOff:   req.DropOff(),
		Status:    toStatus(req.Status()),
		CreatedAt: req.CreatedAt(),
	}
	if driverID := req.Driver(); driverID != nil {
		raw := driverID.Bytes()
		response.DriverId = &raw
	}
	return response
}

func toDriver(d *driver.Driver) servers.Driver {
	return servers.Driver{
		Id:              d.ID().Bytes(),
		Name:            d.Name(),
		Phone:           d.Phone(),
		VehicleCapacity: d.VehicleCapacity().Kilograms(),
	}
}

func toStatus(status request.Status) servers.DeliveryRequestStatus {
	switch status {
	case request.Pending:
		return servers.Pending
	case request.Accepted:
		return servers.Accepted
	case request.Delivered:
		return servers.Delivered
	case request.Cancelled:
		return servers.Cancelled
	default:
		return servers.DeliveryRequestStatus(status.String())
	}
}
