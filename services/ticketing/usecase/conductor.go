package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/logger"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/internal/utils"
)

// Create registers a conductor under an approved agency. The conductor
// logs in with the agency code plus their own username and password.
func (u *ConductorUC) Create(ctx context.Context, conductor *models.Conductor) (*models.Conductor, error) {
	if conductor.Name == "" || conductor.Username == "" || conductor.Password == "" {
		return nil, apperr.Validation("missing required fields: name, username, password")
	}
	if conductor.Email != "" && !utils.IsValidEmail(conductor.Email) {
		return nil, apperr.Validation("invalid email format")
	}
	if conductor.Phone != "" && !utils.IsValidPhoneNumber(conductor.Phone) {
		return nil, apperr.Validation("invalid phone number format")
	}

	agency, err := u.agencyRepo.GetByID(ctx, conductor.AgencyID)
	if err != nil {
		return nil, err
	}
	if agency.Status != models.AgencyStatusApproved {
		return nil, apperr.Forbidden("agency is not approved")
	}
	conductor.AgencyCode = agency.Code

	hashed, err := hashPassword(conductor.Password)
	if err != nil {
		return nil, apperr.Internal("failed to create conductor", err)
	}
	conductor.Password = hashed

	if err := u.conductorRepo.Create(ctx, conductor); err != nil {
		return nil, apperr.Internal("failed to create conductor", err)
	}

	logger.Info("Conductor created",
		logger.String("conductor_id", conductor.ID.String()),
		logger.String("agency_id", conductor.AgencyID.String()))

	conductor.Password = ""
	return conductor, nil
}

// List returns conductors, scoped to an agency when agencyID is set.
func (u *ConductorUC) List(ctx context.Context, agencyID *uuid.UUID) ([]models.Conductor, error) {
	if agencyID != nil {
		return u.conductorRepo.ListByAgency(ctx, *agencyID)
	}
	return u.conductorRepo.List(ctx)
}

// Update applies a partial update; a new password is hashed before it
// reaches storage.
func (u *ConductorUC) Update(ctx context.Context, id uuid.UUID, updates *models.ConductorUpdate) (*models.Conductor, error) {
	if updates.Email != nil && *updates.Email != "" && !utils.IsValidEmail(*updates.Email) {
		return nil, apperr.Validation("invalid email format")
	}
	if updates.Password != nil && *updates.Password != "" {
		hashed, err := hashPassword(*updates.Password)
		if err != nil {
			return nil, apperr.Internal("failed to update conductor", err)
		}
		updates.Password = &hashed
	}

	conductor, err := u.conductorRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	conductor.Password = ""
	return conductor, nil
}

// Delete removes a conductor. Tickets already issued by them survive.
func (u *ConductorUC) Delete(ctx context.Context, id uuid.UUID) error {
	return u.conductorRepo.Delete(ctx, id)
}
