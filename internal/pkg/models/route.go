package models

import (
	"time"

	"github.com/google/uuid"
)

// SubRoute is an intermediate stop on a route with its own fare and
// distance, usable as an alternate ticket source point.
type SubRoute struct {
	Stop     string  `json:"stop"`
	Fare     float64 `json:"fare"`
	Distance float64 `json:"distance"`
}

// Route represents a service line between a source and a destination.
// EstimatedTime is the journey duration in hours and drives the seat
// occupancy window of every ticket on the route.
type Route struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	AgencyID      uuid.UUID  `json:"agencyId" db:"agency_id"`
	Code          string     `json:"code" db:"code"`
	Source        string     `json:"source" db:"source"`
	Destination   string     `json:"destination" db:"destination"`
	Fare          float64    `json:"fare" db:"fare"`
	Distance      float64    `json:"distance" db:"distance"`
	EstimatedTime float64    `json:"estimatedTime" db:"estimated_time"`
	SubRoutes     []SubRoute `json:"subRoutes" db:"-"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

// RouteUpdate carries the merge-on-id fields of a route update.
type RouteUpdate struct {
	Code          *string     `json:"code"`
	Source        *string     `json:"source"`
	Destination   *string     `json:"destination"`
	Fare          *float64    `json:"fare"`
	Distance      *float64    `json:"distance"`
	EstimatedTime *float64    `json:"estimatedTime"`
	SubRoutes     *[]SubRoute `json:"subRoutes"`
}
