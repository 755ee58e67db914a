package models

import (
	"time"

	"github.com/google/uuid"
)

// Bus represents a vehicle owned by an agency. Capacity is mirrored into
// TotalSeats on create and update.
type Bus struct {
	ID         uuid.UUID `json:"id" db:"id"`
	AgencyID   uuid.UUID `json:"agencyId" db:"agency_id"`
	Name       string    `json:"name" db:"name"`
	Plate      string    `json:"plate" db:"plate"`
	Capacity   int       `json:"capacity" db:"capacity"`
	TotalSeats int       `json:"totalSeats" db:"total_seats"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// BusUpdate carries the merge-on-id fields of a bus update.
type BusUpdate struct {
	Name     *string `json:"name"`
	Plate    *string `json:"plate"`
	Capacity *int    `json:"capacity"`
}
