package models

import (
	"time"

	"github.com/google/uuid"
)

// Ticket is an issued passenger ticket. Tickets are append-only; there is
// no update or delete path. Fare stays string-encoded on the wire and in
// the row, matching the receipts the conductors print.
type Ticket struct {
	ID             uuid.UUID `json:"id" db:"id"`
	ConductorID    uuid.UUID `json:"conductorId" db:"conductor_id"`
	ConductorName  string    `json:"conductorName" db:"conductor_name"`
	AgencyID       uuid.UUID `json:"agencyId" db:"agency_id"`
	AgencyCode     string    `json:"agencyCode" db:"agency_code"`
	BusID          uuid.UUID `json:"busId" db:"bus_id"`
	RouteID        uuid.UUID `json:"routeId" db:"route_id"`
	Source         string    `json:"source" db:"source"`
	Destination    string    `json:"destination" db:"destination"`
	Fare           string    `json:"fare" db:"fare"`
	Seat           string    `json:"seat" db:"seat"`
	PassengerName  string    `json:"passengerName" db:"passenger_name"`
	PassengerPhone string    `json:"passengerPhone" db:"passenger_phone"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// TicketRequest is the issuance input. All fields are required; validation
// happens at the handler before the usecase runs the availability check.
type TicketRequest struct {
	ConductorID    uuid.UUID `json:"conductorId"`
	ConductorName  string    `json:"conductorName"`
	AgencyID       uuid.UUID `json:"agencyId"`
	AgencyCode     string    `json:"agencyCode"`
	BusID          uuid.UUID `json:"busId"`
	RouteID        uuid.UUID `json:"routeId"`
	Source         string    `json:"source"`
	Destination    string    `json:"destination"`
	Fare           string    `json:"fare"`
	Seat           string    `json:"seat"`
	PassengerName  string    `json:"passengerName"`
	PassengerPhone string    `json:"passengerPhone"`
}

// TicketCreatedEvent is published to NSQ after a successful issuance.
type TicketCreatedEvent struct {
	TicketID    uuid.UUID `json:"ticket_id"`
	AgencyID    uuid.UUID `json:"agency_id"`
	ConductorID uuid.UUID `json:"conductor_id"`
	BusID       uuid.UUID `json:"bus_id"`
	RouteID     uuid.UUID `json:"route_id"`
	Seat        string    `json:"seat"`
	Fare        string    `json:"fare"`
	CreatedAt   time.Time `json:"created_at"`
}

// AgencyReviewedEvent is published to NSQ when an admin approves or
// rejects an agency registration.
type AgencyReviewedEvent struct {
	AgencyID   uuid.UUID `json:"agency_id"`
	Status     string    `json:"status"`
	ReviewedBy string    `json:"reviewed_by"`
	Reason     string    `json:"reason,omitempty"`
	ReviewedAt time.Time `json:"reviewed_at"`
}
