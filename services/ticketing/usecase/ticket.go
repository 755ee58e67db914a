package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/logger"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/internal/utils"
	"github.com/lajubus/lajubus/services/ticketing/repository"
)

// seatReleaseBuffer is added after the journey ends before the seat can be
// sold again, absorbing delays and same-day return confusion.
const seatReleaseBuffer = 24 * time.Hour

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

// Issue enforces the no-double-booking rule, persists the ticket, and
// updates conductor statistics as one logical operation. The per-seat lock
// serializes concurrent issuances for the same (bus, route, seat) triple;
// without it two requests could both pass the conflict check before either
// writes.
func (u *TicketUC) Issue(ctx context.Context, req *models.TicketRequest) (*models.Ticket, error) {
	route, err := u.routeRepo.GetByID(ctx, req.RouteID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	journeyEnd := now.Add(hoursToDuration(route.EstimatedTime))
	seatAvailableAfter := journeyEnd.Add(seatReleaseBuffer)

	unlock, err := u.seatLock.Lock(ctx, req.BusID, req.RouteID, req.Seat)
	if err != nil {
		if errors.Is(err, repository.ErrSeatLocked) {
			seatErr := &apperr.SeatUnavailableError{Seat: req.Seat, AvailableAfter: seatAvailableAfter}
			return nil, seatErr.AsAppError()
		}
		return nil, apperr.Internal("failed to reserve seat for issuance", err)
	}
	defer unlock()

	// Full history for the seat triple; the window is derived from the
	// route's current estimated time, so it applies retroactively to every
	// historical ticket on this route.
	history, err := u.ticketRepo.ListBySeat(ctx, req.BusID, req.RouteID, req.Seat)
	if err != nil {
		return nil, apperr.Internal("failed to check seat availability", err)
	}

	occupancy := hoursToDuration(route.EstimatedTime) + seatReleaseBuffer
	for _, t := range history {
		if now.Before(t.CreatedAt.Add(occupancy)) {
			// AvailableAfter is a hint from this request's clock; the
			// conflicting ticket's own end time governs real availability.
			seatErr := &apperr.SeatUnavailableError{Seat: req.Seat, AvailableAfter: seatAvailableAfter}
			return nil, seatErr.AsAppError()
		}
	}

	ticket := &models.Ticket{
		ID:             uuid.New(),
		ConductorID:    req.ConductorID,
		ConductorName:  req.ConductorName,
		AgencyID:       req.AgencyID,
		AgencyCode:     req.AgencyCode,
		BusID:          req.BusID,
		RouteID:        req.RouteID,
		Source:         req.Source,
		Destination:    req.Destination,
		Fare:           req.Fare,
		Seat:           req.Seat,
		PassengerName:  req.PassengerName,
		PassengerPhone: req.PassengerPhone,
		CreatedAt:      now,
	}
	if err := u.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, apperr.Internal("failed to create ticket", err)
	}

	u.updateConductorStats(ctx, req, now)
	u.publishTicketCreated(ctx, ticket)

	logger.Info("Ticket issued",
		logger.String("ticket_id", ticket.ID.String()),
		logger.String("seat", ticket.Seat),
		logger.String("conductor_id", ticket.ConductorID.String()),
		logger.String("passenger_phone", utils.MaskPhoneNumber(ticket.PassengerPhone)))

	return ticket, nil
}

// updateConductorStats is a best-effort side effect: a missing conductor
// or a failed counter update never fails an already-persisted ticket.
func (u *TicketUC) updateConductorStats(ctx context.Context, req *models.TicketRequest, now time.Time) {
	fare, err := strconv.ParseFloat(req.Fare, 64)
	if err != nil {
		logger.Warn("Ticket fare is not numeric, skipping conductor stats",
			logger.String("conductor_id", req.ConductorID.String()),
			logger.String("fare", req.Fare))
		return
	}

	if err := u.conductorRepo.IncrementStats(ctx, req.ConductorID, fare, now); err != nil {
		logger.Warn("Failed to update conductor stats",
			logger.String("conductor_id", req.ConductorID.String()),
			logger.Err(err))
	}
}

func (u *TicketUC) publishTicketCreated(ctx context.Context, ticket *models.Ticket) {
	event := models.TicketCreatedEvent{
		TicketID:    ticket.ID,
		AgencyID:    ticket.AgencyID,
		ConductorID: ticket.ConductorID,
		BusID:       ticket.BusID,
		RouteID:     ticket.RouteID,
		Seat:        ticket.Seat,
		Fare:        ticket.Fare,
		CreatedAt:   ticket.CreatedAt,
	}
	if err := u.gw.PublishTicketCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish ticket created event",
			logger.String("ticket_id", ticket.ID.String()),
			logger.Err(err))
	}
}

// List returns tickets filtered by agency, by conductor, or unfiltered.
// Both filters apply when both are set; a conductor filter never widens an
// agency-scoped listing past its tenant.
func (u *TicketUC) List(ctx context.Context, agencyID, conductorID *uuid.UUID) ([]models.Ticket, error) {
	switch {
	case agencyID != nil && conductorID != nil:
		return u.ticketRepo.ListByAgencyAndConductor(ctx, *agencyID, *conductorID)
	case conductorID != nil:
		return u.ticketRepo.ListByConductor(ctx, *conductorID)
	case agencyID != nil:
		return u.ticketRepo.ListByAgency(ctx, *agencyID)
	default:
		return u.ticketRepo.List(ctx)
	}
}
