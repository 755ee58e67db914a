package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/middleware"
	"github.com/lajubus/lajubus/internal/pkg/models"
)

// scopeAgencyID resolves the agency scope of a request. Agency sessions
// are always scoped to their own agency regardless of query parameters;
// admins may narrow with ?agencyId=, or see everything.
func scopeAgencyID(c echo.Context) (*uuid.UUID, error) {
	user, _ := middleware.AuthUserFromContext(c)
	if user.Role == models.RoleAgency || user.Role == models.RoleConductor {
		id, err := uuid.Parse(user.AgencyID)
		if err != nil {
			return nil, apperr.Unauthorized("session has no agency")
		}
		return &id, nil
	}

	if raw := c.QueryParam("agencyId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperr.Validation("invalid agencyId")
		}
		return &id, nil
	}
	return nil, nil
}

// ownAgencyID binds a create payload to the caller's agency. Agency
// sessions may only create under themselves; admins must name the target
// agency in the payload.
func ownAgencyID(c echo.Context, payloadID uuid.UUID) (uuid.UUID, error) {
	user, _ := middleware.AuthUserFromContext(c)
	if user.Role == models.RoleAgency {
		id, err := uuid.Parse(user.AgencyID)
		if err != nil {
			return uuid.Nil, apperr.Unauthorized("session has no agency")
		}
		return id, nil
	}
	if payloadID == uuid.Nil {
		return uuid.Nil, apperr.Validation("agencyId is required")
	}
	return payloadID, nil
}
