package ticketing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/lajubus/lajubus/services/ticketing AgencyRepo,BusRepo,RouteRepo,ConductorRepo,TicketRepo,SeatLocker

// AgencyRepo persists agency tenants.
type AgencyRepo interface {
	Create(ctx context.Context, agency *models.Agency) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Agency, error)
	GetByCodeAndUsername(ctx context.Context, code, username string) (*models.Agency, error)
	List(ctx context.Context) ([]models.Agency, error)
	ListByStatus(ctx context.Context, status string) ([]models.Agency, error)
	Update(ctx context.Context, id uuid.UUID, updates *models.AgencyUpdate) (*models.Agency, error)
	SetReview(ctx context.Context, id uuid.UUID, status, reviewedBy, reason string, reviewedAt time.Time) (*models.Agency, error)
	// Delete removes the agency and all of its buses, routes, conductors
	// and tickets in a single transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

// BusRepo persists buses. Create and Delete maintain the owning agency's
// bus id list.
type BusRepo interface {
	Create(ctx context.Context, bus *models.Bus) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bus, error)
	List(ctx context.Context) ([]models.Bus, error)
	ListByAgency(ctx context.Context, agencyID uuid.UUID) ([]models.Bus, error)
	Update(ctx context.Context, id uuid.UUID, updates *models.BusUpdate) (*models.Bus, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RouteRepo persists routes. Create and Delete maintain the owning
// agency's route id list.
type RouteRepo interface {
	Create(ctx context.Context, route *models.Route) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Route, error)
	List(ctx context.Context) ([]models.Route, error)
	ListByAgency(ctx context.Context, agencyID uuid.UUID) ([]models.Route, error)
	Update(ctx context.Context, id uuid.UUID, updates *models.RouteUpdate) (*models.Route, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConductorRepo persists conductors and their running counters.
type ConductorRepo interface {
	Create(ctx context.Context, conductor *models.Conductor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Conductor, error)
	GetByAgencyCodeAndUsername(ctx context.Context, agencyCode, username string) (*models.Conductor, error)
	List(ctx context.Context) ([]models.Conductor, error)
	ListByAgency(ctx context.Context, agencyID uuid.UUID) ([]models.Conductor, error)
	Update(ctx context.Context, id uuid.UUID, updates *models.ConductorUpdate) (*models.Conductor, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementStats atomically applies totalTickets+1,
	// totalEarnings+fare, lastActive=now. A missing conductor is not an
	// error; issuance proceeds without stats.
	IncrementStats(ctx context.Context, id uuid.UUID, fare float64, now time.Time) error
}

// TicketRepo persists issued tickets. Tickets are append-only.
type TicketRepo interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	List(ctx context.Context) ([]models.Ticket, error)
	ListByAgency(ctx context.Context, agencyID uuid.UUID) ([]models.Ticket, error)
	ListByConductor(ctx context.Context, conductorID uuid.UUID) ([]models.Ticket, error)
	// ListByAgencyAndConductor applies both filters; listings scoped to an
	// agency must not widen when a conductor filter is added.
	ListByAgencyAndConductor(ctx context.Context, agencyID, conductorID uuid.UUID) ([]models.Ticket, error)
	// ListBySeat returns the full ticket history for a bus/route/seat
	// triple, unfiltered by time; the occupancy filter is usecase logic.
	ListBySeat(ctx context.Context, busID, routeID uuid.UUID, seat string) ([]models.Ticket, error)
}

// UnlockFunc releases a held seat lock.
type UnlockFunc func()

// SeatLocker serializes the check-then-write of ticket issuance per
// (bus, route, seat) triple across service instances.
type SeatLocker interface {
	// Lock acquires the per-seat lock. It returns ErrSeatLocked (wrapped)
	// when another issuance currently holds the seat.
	Lock(ctx context.Context, busID, routeID uuid.UUID, seat string) (UnlockFunc, error)
}
