// Package usecase holds the business rules of the ticketing service. The
// only non-trivial rule is seat availability in ticket issuance; the rest
// is validation and persistence orchestration.
package usecase

import (
	"time"

	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/services/ticketing"
)

// AgencyUC implements ticketing.AgencyUC.
type AgencyUC struct {
	agencyRepo ticketing.AgencyRepo
	gw         ticketing.TicketingGW
	cfg        *models.Config
	now        func() time.Time
}

// NewAgencyUC creates a new agency usecase instance
func NewAgencyUC(agencyRepo ticketing.AgencyRepo, gw ticketing.TicketingGW, cfg *models.Config) *AgencyUC {
	return &AgencyUC{
		agencyRepo: agencyRepo,
		gw:         gw,
		cfg:        cfg,
		now:        time.Now,
	}
}

// BusUC implements ticketing.BusUC.
type BusUC struct {
	busRepo    ticketing.BusRepo
	agencyRepo ticketing.AgencyRepo
	cfg        *models.Config
}

// NewBusUC creates a new bus usecase instance
func NewBusUC(busRepo ticketing.BusRepo, agencyRepo ticketing.AgencyRepo, cfg *models.Config) *BusUC {
	return &BusUC{
		busRepo:    busRepo,
		agencyRepo: agencyRepo,
		cfg:        cfg,
	}
}

// RouteUC implements ticketing.RouteUC.
type RouteUC struct {
	routeRepo  ticketing.RouteRepo
	agencyRepo ticketing.AgencyRepo
	cfg        *models.Config
}

// NewRouteUC creates a new route usecase instance
func NewRouteUC(routeRepo ticketing.RouteRepo, agencyRepo ticketing.AgencyRepo, cfg *models.Config) *RouteUC {
	return &RouteUC{
		routeRepo:  routeRepo,
		agencyRepo: agencyRepo,
		cfg:        cfg,
	}
}

// ConductorUC implements ticketing.ConductorUC.
type ConductorUC struct {
	conductorRepo ticketing.ConductorRepo
	agencyRepo    ticketing.AgencyRepo
	cfg           *models.Config
}

// NewConductorUC creates a new conductor usecase instance
func NewConductorUC(conductorRepo ticketing.ConductorRepo, agencyRepo ticketing.AgencyRepo, cfg *models.Config) *ConductorUC {
	return &ConductorUC{
		conductorRepo: conductorRepo,
		agencyRepo:    agencyRepo,
		cfg:           cfg,
	}
}

// TicketUC implements ticketing.TicketUC, the seat-availability core.
type TicketUC struct {
	ticketRepo    ticketing.TicketRepo
	routeRepo     ticketing.RouteRepo
	conductorRepo ticketing.ConductorRepo
	seatLock      ticketing.SeatLocker
	gw            ticketing.TicketingGW
	cfg           *models.Config
	now           func() time.Time
}

// NewTicketUC creates a new ticket usecase instance
func NewTicketUC(
	ticketRepo ticketing.TicketRepo,
	routeRepo ticketing.RouteRepo,
	conductorRepo ticketing.ConductorRepo,
	seatLock ticketing.SeatLocker,
	gw ticketing.TicketingGW,
	cfg *models.Config,
) *TicketUC {
	return &TicketUC{
		ticketRepo:    ticketRepo,
		routeRepo:     routeRepo,
		conductorRepo: conductorRepo,
		seatLock:      seatLock,
		gw:            gw,
		cfg:           cfg,
		now:           time.Now,
	}
}

// AuthUC implements ticketing.AuthUC.
type AuthUC struct {
	agencyRepo    ticketing.AgencyRepo
	conductorRepo ticketing.ConductorRepo
	cfg           *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(agencyRepo ticketing.AgencyRepo, conductorRepo ticketing.ConductorRepo, cfg *models.Config) *AuthUC {
	return &AuthUC{
		agencyRepo:    agencyRepo,
		conductorRepo: conductorRepo,
		cfg:           cfg,
	}
}
