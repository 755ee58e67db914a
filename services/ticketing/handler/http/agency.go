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

// AgencyHandler handles HTTP requests for agency operations
type AgencyHandler struct {
	agencyUC ticketing.AgencyUC
}

// NewAgencyHandler creates a new agency handler
func NewAgencyHandler(agencyUC ticketing.AgencyUC) *AgencyHandler {
	return &AgencyHandler{
		agencyUC: agencyUC,
	}
}

// Register handles public agency registration. The new agency is created
// in pending status and must be approved before it can operate.
func (h *AgencyHandler) Register(c echo.Context) error {
	var agency models.Agency
	if err := c.Bind(&agency); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.agencyUC.Register(c.Request().Context(), &agency)
	if err != nil {
		logger.Warn("Agency registration failed",
			logger.ErrorField(err),
			logger.String("name", agency.Name))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Agency registered successfully", created)
}

// Create handles admin creation of an approved agency
func (h *AgencyHandler) Create(c echo.Context) error {
	var agency models.Agency
	if err := c.Bind(&agency); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.agencyUC.CreateByAdmin(c.Request().Context(), &agency)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Agency created successfully", created)
}

// List handles agency listing for the admin dashboard. ?status=pending
// narrows to registrations awaiting review.
func (h *AgencyHandler) List(c echo.Context) error {
	var (
		agencies []models.Agency
		err      error
	)
	if c.QueryParam("status") == models.AgencyStatusPending {
		agencies, err = h.agencyUC.ListPending(c.Request().Context())
	} else {
		agencies, err = h.agencyUC.List(c.Request().Context())
	}
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Agencies retrieved successfully", agencies)
}

// ListPending handles the review queue listing
func (h *AgencyHandler) ListPending(c echo.Context) error {
	agencies, err := h.agencyUC.ListPending(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Pending agencies retrieved successfully", agencies)
}

// Approve handles agency approval by the admin
func (h *AgencyHandler) Approve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid agency ID")
	}

	user, _ := middleware.AuthUserFromContext(c)
	agency, err := h.agencyUC.Approve(c.Request().Context(), id, user.ID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Agency approved successfully", agency)
}

// Reject handles agency rejection by the admin. A reason is required.
func (h *AgencyHandler) Reject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid agency ID")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, _ := middleware.AuthUserFromContext(c)
	agency, err := h.agencyUC.Reject(c.Request().Context(), id, user.ID, body.Reason)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Agency rejected", agency)
}

// Update handles partial agency updates. Agencies may only update
// themselves; admins may update anyone.
func (h *AgencyHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid agency ID")
	}

	user, _ := middleware.AuthUserFromContext(c)
	if user.Role == models.RoleAgency && user.AgencyID != id.String() {
		return utils.ForbiddenResponse(c, "Cannot update another agency")
	}

	var updates models.AgencyUpdate
	if err := c.Bind(&updates); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	agency, err := h.agencyUC.Update(c.Request().Context(), id, &updates)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Agency updated successfully", agency)
}

// Delete handles agency deletion, cascading to all owned records
func (h *AgencyHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid agency ID")
	}

	if err := h.agencyUC.Delete(c.Request().Context(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Agency deleted successfully", nil)
}
