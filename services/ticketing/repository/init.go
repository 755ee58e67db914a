// Package repository implements PostgreSQL persistence for the ticketing
// service, plus the Redis-backed seat lock.
package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/lajubus/lajubus/internal/pkg/database"
	"github.com/lajubus/lajubus/internal/pkg/models"
)

// AgencyRepo persists agencies.
type AgencyRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAgencyRepo creates a new agency repository instance
func NewAgencyRepo(cfg *models.Config, db *sqlx.DB) *AgencyRepo {
	return &AgencyRepo{cfg: cfg, db: db}
}

// BusRepo persists buses.
type BusRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBusRepo creates a new bus repository instance
func NewBusRepo(cfg *models.Config, db *sqlx.DB) *BusRepo {
	return &BusRepo{cfg: cfg, db: db}
}

// RouteRepo persists routes.
type RouteRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRouteRepo creates a new route repository instance
func NewRouteRepo(cfg *models.Config, db *sqlx.DB) *RouteRepo {
	return &RouteRepo{cfg: cfg, db: db}
}

// ConductorRepo persists conductors.
type ConductorRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewConductorRepo creates a new conductor repository instance
func NewConductorRepo(cfg *models.Config, db *sqlx.DB) *ConductorRepo {
	return &ConductorRepo{cfg: cfg, db: db}
}

// TicketRepo persists tickets.
type TicketRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTicketRepo creates a new ticket repository instance
func NewTicketRepo(cfg *models.Config, db *sqlx.DB) *TicketRepo {
	return &TicketRepo{cfg: cfg, db: db}
}

// SeatLock serializes seat issuance through Redis.
type SeatLock struct {
	redisClient *database.RedisClient
}

// NewSeatLock creates a new seat lock over the given Redis client
func NewSeatLock(redisClient *database.RedisClient) *SeatLock {
	return &SeatLock{redisClient: redisClient}
}
