package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/models"
)

const ticketColumns = `id, conductor_id, conductor_name, agency_id, agency_code, bus_id, route_id,
	source, destination, fare, seat, passenger_name, passenger_phone, created_at`

// Create inserts a ticket. Tickets are append-only; there is no update or
// delete statement in this repository.
func (r *TicketRepo) Create(ctx context.Context, ticket *models.Ticket) error {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO tickets (id, conductor_id, conductor_name, agency_id, agency_code, bus_id, route_id,
			source, destination, fare, seat, passenger_name, passenger_phone, created_at)
		VALUES (:id, :conductor_id, :conductor_name, :agency_id, :agency_code, :bus_id, :route_id,
			:source, :destination, :fare, :seat, :passenger_name, :passenger_phone, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, ticket); err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}

	return nil
}

func (r *TicketRepo) list(ctx context.Context, query string, args ...interface{}) ([]models.Ticket, error) {
	tickets := []models.Ticket{}
	if err := r.db.SelectContext(ctx, &tickets, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// List returns all tickets
func (r *TicketRepo) List(ctx context.Context) ([]models.Ticket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM tickets ORDER BY created_at DESC`)
}

// ListByAgency returns the tickets issued under an agency
func (r *TicketRepo) ListByAgency(ctx context.Context, agencyID uuid.UUID) ([]models.Ticket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE agency_id = $1 ORDER BY created_at DESC`, agencyID)
}

// ListByConductor returns the tickets issued by a conductor
func (r *TicketRepo) ListByConductor(ctx context.Context, conductorID uuid.UUID) ([]models.Ticket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE conductor_id = $1 ORDER BY created_at DESC`, conductorID)
}

// ListByAgencyAndConductor returns the tickets a conductor issued under an
// agency. Both filters apply; a conductor outside the agency yields nothing.
func (r *TicketRepo) ListByAgencyAndConductor(ctx context.Context, agencyID, conductorID uuid.UUID) ([]models.Ticket, error) {
	return r.list(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE agency_id = $1 AND conductor_id = $2 ORDER BY created_at DESC`,
		agencyID, conductorID)
}

// ListBySeat returns every ticket ever issued for a bus/route/seat triple.
// The occupancy-window filter belongs to the usecase because the window is
// derived from the route's current estimated time, not stored per ticket.
func (r *TicketRepo) ListBySeat(ctx context.Context, busID, routeID uuid.UUID, seat string) ([]models.Ticket, error) {
	return r.list(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE bus_id = $1 AND route_id = $2 AND seat = $3`,
		busID, routeID, seat)
}
