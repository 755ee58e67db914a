package models

import (
	"time"

	"github.com/google/uuid"
)

// Conductor is an agency employee who issues tickets. TotalTickets and
// TotalEarnings are running counters updated as a side effect of successful
// ticket issuance; they are derived state recomputable from the tickets
// table.
type Conductor struct {
	ID            uuid.UUID `json:"id" db:"id"`
	AgencyID      uuid.UUID `json:"agencyId" db:"agency_id"`
	AgencyCode    string    `json:"agencyCode" db:"agency_code"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone" db:"phone"`
	Username      string    `json:"username" db:"username"`
	Password      string    `json:"password,omitempty" db:"password"`
	TotalTickets  int       `json:"totalTickets" db:"total_tickets"`
	TotalEarnings float64   `json:"totalEarnings" db:"total_earnings"`
	LastActive    time.Time `json:"lastActive" db:"last_active"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// ConductorUpdate carries the merge-on-id fields of a conductor update.
type ConductorUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}
