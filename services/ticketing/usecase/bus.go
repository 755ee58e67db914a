package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/logger"
	"github.com/lajubus/lajubus/internal/pkg/models"
)

// Create registers a bus under an approved agency and records its id on
// the agency document.
func (u *BusUC) Create(ctx context.Context, bus *models.Bus) (*models.Bus, error) {
	if bus.Name == "" || bus.Plate == "" || bus.Capacity <= 0 {
		return nil, apperr.Validation("missing required fields: name, plate, capacity")
	}

	agency, err := u.agencyRepo.GetByID(ctx, bus.AgencyID)
	if err != nil {
		return nil, err
	}
	if agency.Status != models.AgencyStatusApproved {
		return nil, apperr.Forbidden("agency is not approved")
	}

	bus.TotalSeats = bus.Capacity
	if err := u.busRepo.Create(ctx, bus); err != nil {
		return nil, apperr.Internal("failed to create bus", err)
	}

	logger.Info("Bus created",
		logger.String("bus_id", bus.ID.String()),
		logger.String("agency_id", bus.AgencyID.String()),
		logger.String("plate", bus.Plate))
	return bus, nil
}

// List returns buses, scoped to an agency when agencyID is set.
func (u *BusUC) List(ctx context.Context, agencyID *uuid.UUID) ([]models.Bus, error) {
	if agencyID != nil {
		return u.busRepo.ListByAgency(ctx, *agencyID)
	}
	return u.busRepo.List(ctx)
}

// Update applies a partial update to a bus.
func (u *BusUC) Update(ctx context.Context, id uuid.UUID, updates *models.BusUpdate) (*models.Bus, error) {
	if updates.Capacity != nil && *updates.Capacity <= 0 {
		return nil, apperr.Validation("capacity must be positive")
	}
	return u.busRepo.Update(ctx, id, updates)
}

// Delete removes a bus and pulls its id from the owning agency.
func (u *BusUC) Delete(ctx context.Context, id uuid.UUID) error {
	return u.busRepo.Delete(ctx, id)
}
