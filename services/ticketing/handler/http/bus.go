package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/internal/utils"
	"github.com/lajubus/lajubus/services/ticketing"
)

// BusHandler handles HTTP requests for bus operations
type BusHandler struct {
	busUC ticketing.BusUC
}

// NewBusHandler creates a new bus handler
func NewBusHandler(busUC ticketing.BusUC) *BusHandler {
	return &BusHandler{
		busUC: busUC,
	}
}

// Create handles bus creation requests
func (h *BusHandler) Create(c echo.Context) error {
	var bus models.Bus
	if err := c.Bind(&bus); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	agencyID, err := ownAgencyID(c, bus.AgencyID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	bus.AgencyID = agencyID

	created, err := h.busUC.Create(c.Request().Context(), &bus)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Bus created successfully", created)
}

// List handles bus listing, scoped to the caller's agency
func (h *BusHandler) List(c echo.Context) error {
	agencyID, err := scopeAgencyID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	buses, err := h.busUC.List(c.Request().Context(), agencyID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Buses retrieved successfully", buses)
}

// Update handles partial bus updates
func (h *BusHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid bus ID")
	}

	var updates models.BusUpdate
	if err := c.Bind(&updates); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	bus, err := h.busUC.Update(c.Request().Context(), id, &updates)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Bus updated successfully", bus)
}

// Delete handles bus deletion
func (h *BusHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid bus ID")
	}

	if err := h.busUC.Delete(c.Request().Context(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Bus deleted successfully", nil)
}
