package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/logger"
	"github.com/lajubus/lajubus/internal/pkg/models"
)

// Create registers a route under an approved agency and records its id on
// the agency document.
func (u *RouteUC) Create(ctx context.Context, route *models.Route) (*models.Route, error) {
	if route.Source == "" || route.Destination == "" {
		return nil, apperr.Validation("missing required fields: source, destination")
	}
	if route.EstimatedTime <= 0 {
		return nil, apperr.Validation("estimatedTime must be positive")
	}
	if route.Fare < 0 || route.Distance < 0 {
		return nil, apperr.Validation("fare and distance must not be negative")
	}

	agency, err := u.agencyRepo.GetByID(ctx, route.AgencyID)
	if err != nil {
		return nil, err
	}
	if agency.Status != models.AgencyStatusApproved {
		return nil, apperr.Forbidden("agency is not approved")
	}

	if err := u.routeRepo.Create(ctx, route); err != nil {
		return nil, apperr.Internal("failed to create route", err)
	}

	logger.Info("Route created",
		logger.String("route_id", route.ID.String()),
		logger.String("agency_id", route.AgencyID.String()),
		logger.String("source", route.Source),
		logger.String("destination", route.Destination))
	return route, nil
}

// List returns routes, scoped to an agency when agencyID is set.
func (u *RouteUC) List(ctx context.Context, agencyID *uuid.UUID) ([]models.Route, error) {
	if agencyID != nil {
		return u.routeRepo.ListByAgency(ctx, *agencyID)
	}
	return u.routeRepo.List(ctx)
}

// Update applies a partial update to a route. Changing estimatedTime
// changes the occupancy window of every ticket ever issued on the route,
// past tickets included.
func (u *RouteUC) Update(ctx context.Context, id uuid.UUID, updates *models.RouteUpdate) (*models.Route, error) {
	if updates.EstimatedTime != nil && *updates.EstimatedTime <= 0 {
		return nil, apperr.Validation("estimatedTime must be positive")
	}
	return u.routeRepo.Update(ctx, id, updates)
}

// Delete removes a route and pulls its id from the owning agency.
// Tickets issued on the route survive, but further issuance on them
// fails the route lookup.
func (u *RouteUC) Delete(ctx context.Context, id uuid.UUID) error {
	return u.routeRepo.Delete(ctx, id)
}
