package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lajubus/lajubus/internal/pkg/logger"
	"github.com/lajubus/lajubus/internal/pkg/middleware"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/internal/utils"
	"github.com/lajubus/lajubus/services/ticketing"
)

// TicketHandler handles HTTP requests for ticket issuance and listing
type TicketHandler struct {
	ticketUC ticketing.TicketUC
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketUC ticketing.TicketUC) *TicketHandler {
	return &TicketHandler{
		ticketUC: ticketUC,
	}
}

// Issue handles ticket issuance requests. Conductor sessions are bound to
// their own identity and agency sessions to their own tenant; the payload
// cannot issue on behalf of someone else.
func (h *TicketHandler) Issue(c echo.Context) error {
	var req models.TicketRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, _ := middleware.AuthUserFromContext(c)
	switch user.Role {
	case models.RoleConductor:
		conductorID, err := uuid.Parse(user.ID)
		if err != nil {
			return utils.UnauthorizedResponse(c, "Invalid session identity")
		}
		agencyID, err := uuid.Parse(user.AgencyID)
		if err != nil {
			return utils.UnauthorizedResponse(c, "Session has no agency")
		}
		req.ConductorID = conductorID
		req.ConductorName = user.Name
		req.AgencyID = agencyID
		req.AgencyCode = user.AgencyCode
	case models.RoleAgency:
		// An agency issues on behalf of its conductors but never under
		// another tenant's identity.
		agencyID, err := uuid.Parse(user.AgencyID)
		if err != nil {
			return utils.UnauthorizedResponse(c, "Session has no agency")
		}
		req.AgencyID = agencyID
		req.AgencyCode = user.AgencyCode
	}

	if req.BusID == uuid.Nil || req.RouteID == uuid.Nil || req.AgencyID == uuid.Nil {
		return utils.BadRequestResponse(c, "Missing required fields: busId, routeId, agencyId")
	}
	if req.Seat == "" || req.Fare == "" || req.Source == "" || req.Destination == "" ||
		req.PassengerName == "" || req.PassengerPhone == "" {
		return utils.BadRequestResponse(c, "Missing required fields: seat, fare, source, destination, passengerName, passengerPhone")
	}

	ticket, err := h.ticketUC.Issue(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Ticket issuance rejected",
			logger.ErrorField(err),
			logger.String("bus_id", req.BusID.String()),
			logger.String("seat", req.Seat))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Ticket issued successfully", ticket)
}

// List handles ticket listing. Conductors see their own tickets, agencies
// their agency's, admins everything (narrowable by ?agencyId= and
// ?conductorId=).
func (h *TicketHandler) List(c echo.Context) error {
	user, _ := middleware.AuthUserFromContext(c)

	var conductorID *uuid.UUID
	if user.Role == models.RoleConductor {
		id, err := uuid.Parse(user.ID)
		if err != nil {
			return utils.UnauthorizedResponse(c, "Invalid session identity")
		}
		conductorID = &id
	} else if param := c.QueryParam("conductorId"); param != "" {
		id, err := uuid.Parse(param)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid conductorId filter")
		}
		conductorID = &id
	}

	agencyID, err := scopeAgencyID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	tickets, err := h.ticketUC.List(c.Request().Context(), agencyID, conductorID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Tickets retrieved successfully", tickets)
}
