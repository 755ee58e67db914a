package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/internal/utils"
	"github.com/lajubus/lajubus/services/ticketing"
)

// ConductorHandler handles HTTP requests for conductor operations
type ConductorHandler struct {
	conductorUC ticketing.ConductorUC
}

// NewConductorHandler creates a new conductor handler
func NewConductorHandler(conductorUC ticketing.ConductorUC) *ConductorHandler {
	return &ConductorHandler{
		conductorUC: conductorUC,
	}
}

// Create handles conductor creation requests
func (h *ConductorHandler) Create(c echo.Context) error {
	var conductor models.Conductor
	if err := c.Bind(&conductor); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	agencyID, err := ownAgencyID(c, conductor.AgencyID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	conductor.AgencyID = agencyID

	created, err := h.conductorUC.Create(c.Request().Context(), &conductor)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Conductor created successfully", created)
}

// List handles conductor listing, scoped to the caller's agency
func (h *ConductorHandler) List(c echo.Context) error {
	agencyID, err := scopeAgencyID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	conductors, err := h.conductorUC.List(c.Request().Context(), agencyID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Conductors retrieved successfully", conductors)
}

// Update handles partial conductor updates
func (h *ConductorHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid conductor ID")
	}

	var updates models.ConductorUpdate
	if err := c.Bind(&updates); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	conductor, err := h.conductorUC.Update(c.Request().Context(), id, &updates)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Conductor updated successfully", conductor)
}

// Delete handles conductor deletion
func (h *ConductorHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid conductor ID")
	}

	if err := h.conductorUC.Delete(c.Request().Context(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Conductor deleted successfully", nil)
}
