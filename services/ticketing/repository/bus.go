package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/models"
)

const busColumns = `id, agency_id, name, plate, capacity, total_seats, created_at`

// Create inserts a bus and pushes its id into the owning agency's list.
func (r *BusRepo) Create(ctx context.Context, bus *models.Bus) error {
	bus.ID = uuid.New()
	bus.TotalSeats = bus.Capacity
	bus.CreatedAt = time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO buses (id, agency_id, name, plate, capacity, total_seats, created_at)
		VALUES (:id, :agency_id, :name, :plate, :capacity, :total_seats, :created_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, bus); err != nil {
		return fmt.Errorf("failed to insert bus: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE agencies SET buses = buses || to_jsonb($2::text) WHERE id = $1`,
		bus.AgencyID, bus.ID.String())
	if err != nil {
		return fmt.Errorf("failed to append bus to agency: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bus insert: %w", err)
	}

	return nil
}

// GetByID retrieves a bus by id
func (r *BusRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Bus, error) {
	var bus models.Bus
	query := `SELECT ` + busColumns + ` FROM buses WHERE id = $1`

	err := r.db.GetContext(ctx, &bus, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("bus not found")
		}
		return nil, fmt.Errorf("failed to get bus: %w", err)
	}

	return &bus, nil
}

// List returns all buses
func (r *BusRepo) List(ctx context.Context) ([]models.Bus, error) {
	buses := []models.Bus{}
	query := `SELECT ` + busColumns + ` FROM buses ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &buses, query); err != nil {
		return nil, fmt.Errorf("failed to list buses: %w", err)
	}

	return buses, nil
}

// ListByAgency returns the buses owned by an agency
func (r *BusRepo) ListByAgency(ctx context.Context, agencyID uuid.UUID) ([]models.Bus, error) {
	buses := []models.Bus{}
	query := `SELECT ` + busColumns + ` FROM buses WHERE agency_id = $1 ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &buses, query, agencyID); err != nil {
		return nil, fmt.Errorf("failed to list agency buses: %w", err)
	}

	return buses, nil
}

// Update applies a merge-on-id partial update and returns the new row.
// A capacity change is mirrored into total_seats.
func (r *BusRepo) Update(ctx context.Context, id uuid.UUID, updates *models.BusUpdate) (*models.Bus, error) {
	setClauses := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if updates.Name != nil {
		setClauses = append(setClauses, "name = "+arg(*updates.Name))
	}
	if updates.Plate != nil {
		setClauses = append(setClauses, "plate = "+arg(*updates.Plate))
	}
	if updates.Capacity != nil {
		ref := arg(*updates.Capacity)
		setClauses = append(setClauses, "capacity = "+ref, "total_seats = "+ref)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	var bus models.Bus
	query := fmt.Sprintf(`UPDATE buses SET %s WHERE id = %s RETURNING `+busColumns,
		strings.Join(setClauses, ", "), arg(id))

	err := r.db.GetContext(ctx, &bus, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("bus not found")
		}
		return nil, fmt.Errorf("failed to update bus: %w", err)
	}

	return &bus, nil
}

// Delete removes a bus and pulls its id from the owning agency's list.
func (r *BusRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var agencyID uuid.UUID
	err = tx.QueryRowContext(ctx, `DELETE FROM buses WHERE id = $1 RETURNING agency_id`, id).Scan(&agencyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("bus not found")
		}
		return fmt.Errorf("failed to delete bus: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE agencies SET buses = buses - $2 WHERE id = $1`,
		agencyID, id.String())
	if err != nil {
		return fmt.Errorf("failed to remove bus from agency: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bus delete: %w", err)
	}

	return nil
}
