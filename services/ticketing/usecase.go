package ticketing

import (
	"context"

	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/lajubus/lajubus/services/ticketing AgencyUC,BusUC,RouteUC,ConductorUC,TicketUC,AuthUC

// AgencyUC drives agency registration, review and tenancy lifecycle.
type AgencyUC interface {
	// Register creates a pending agency from the public registration form.
	Register(ctx context.Context, agency *models.Agency) (*models.Agency, error)
	// CreateByAdmin creates an approved agency directly.
	CreateByAdmin(ctx context.Context, agency *models.Agency) (*models.Agency, error)
	List(ctx context.Context) ([]models.Agency, error)
	ListPending(ctx context.Context) ([]models.Agency, error)
	Approve(ctx context.Context, id uuid.UUID, adminID string) (*models.Agency, error)
	Reject(ctx context.Context, id uuid.UUID, adminID, reason string) (*models.Agency, error)
	Update(ctx context.Context, id uuid.UUID, updates *models.AgencyUpdate) (*models.Agency, error)
	// Delete cascades to the agency's buses, routes, conductors and tickets.
	Delete(ctx context.Context, id uuid.UUID) error
}

// BusUC drives bus CRUD. A nil agencyID lists the whole fleet.
type BusUC interface {
	Create(ctx context.Context, bus *models.Bus) (*models.Bus, error)
	List(ctx context.Context, agencyID *uuid.UUID) ([]models.Bus, error)
	Update(ctx context.Context, id uuid.UUID, updates *models.BusUpdate) (*models.Bus, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RouteUC drives route CRUD.
type RouteUC interface {
	Create(ctx context.Context, route *models.Route) (*models.Route, error)
	List(ctx context.Context, agencyID *uuid.UUID) ([]models.Route, error)
	Update(ctx context.Context, id uuid.UUID, updates *models.RouteUpdate) (*models.Route, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConductorUC drives conductor CRUD.
type ConductorUC interface {
	Create(ctx context.Context, conductor *models.Conductor) (*models.Conductor, error)
	List(ctx context.Context, agencyID *uuid.UUID) ([]models.Conductor, error)
	Update(ctx context.Context, id uuid.UUID, updates *models.ConductorUpdate) (*models.Conductor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TicketUC owns the seat-availability rule.
type TicketUC interface {
	Issue(ctx context.Context, req *models.TicketRequest) (*models.Ticket, error)
	List(ctx context.Context, agencyID, conductorID *uuid.UUID) ([]models.Ticket, error)
}

// AuthUC issues and validates session tokens.
type AuthUC interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Validate(tokenString string) *models.ValidateResponse
}
