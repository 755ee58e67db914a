package models

import (
	"time"

	"github.com/google/uuid"
)

// Agency approval states
const (
	AgencyStatusPending  = "pending"
	AgencyStatusApproved = "approved"
	AgencyStatusRejected = "rejected"
)

// Agency represents a bus operator tenant. Agencies registered through the
// public form start in pending status; agencies created by an admin are
// approved immediately.
type Agency struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Code     string    `json:"code" db:"code"`
	Name     string    `json:"name" db:"name"`
	Username string    `json:"username" db:"username"`
	Password string    `json:"password,omitempty" db:"password"`
	Email    string    `json:"email" db:"email"`
	Phone    string    `json:"phone" db:"phone"`

	// Owned entity ids, maintained on bus/route create and delete.
	Buses  []string `json:"buses" db:"-"`
	Routes []string `json:"routes" db:"-"`

	// Registration form fields, absent for admin-created agencies.
	LegalStatus               string   `json:"legalStatus,omitempty" db:"legal_status"`
	YearOfEstablishment       int      `json:"yearOfEstablishment,omitempty" db:"year_of_establishment"`
	CompanyRegistrationNumber string   `json:"companyRegistrationNumber,omitempty" db:"company_registration_number"`
	GSTTaxID                  string   `json:"gstTaxId,omitempty" db:"gst_tax_id"`
	HeadOfficeAddress         string   `json:"headOfficeAddress,omitempty" db:"head_office_address"`
	City                      string   `json:"city,omitempty" db:"city"`
	State                     string   `json:"state,omitempty" db:"state"`
	Pincode                   string   `json:"pincode,omitempty" db:"pincode"`
	AdminName                 string   `json:"adminName,omitempty" db:"admin_name"`
	AdminDesignation          string   `json:"adminDesignation,omitempty" db:"admin_designation"`
	AdminEmail                string   `json:"adminEmail,omitempty" db:"admin_email"`
	AdminPhone                string   `json:"adminPhone,omitempty" db:"admin_phone"`
	AlternatePhone            string   `json:"alternatePhone,omitempty" db:"alternate_phone"`
	TotalBuses                int      `json:"totalBuses,omitempty" db:"total_buses"`
	PrimaryBusTypes           []string `json:"primaryBusTypes,omitempty" db:"-"`
	KeyOperatingRoutes        string   `json:"keyOperatingRoutes,omitempty" db:"key_operating_routes"`
	CurrentTicketingMethod    string   `json:"currentTicketingMethod,omitempty" db:"current_ticketing_method"`
	ExpectedGoLiveDate        string   `json:"expectedGoLiveDate,omitempty" db:"expected_go_live_date"`
	SpecificRequirements      string   `json:"specificRequirements,omitempty" db:"specific_requirements"`

	Status          string     `json:"status" db:"status"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty" db:"reviewed_at"`
	ReviewedBy      string     `json:"reviewedBy,omitempty" db:"reviewed_by"`
	RejectionReason string     `json:"rejectionReason,omitempty" db:"rejection_reason"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AgencyUpdate carries the merge-on-id fields of an agency update.
// Nil pointers are left untouched.
type AgencyUpdate struct {
	Name     *string `json:"name"`
	Code     *string `json:"code"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}
