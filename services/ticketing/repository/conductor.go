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

const conductorColumns = `id, agency_id, agency_code, name, email, phone, username, password,
	total_tickets, total_earnings, last_active, created_at`

// Create inserts a conductor with zeroed counters. The caller hashes the
// password.
func (r *ConductorRepo) Create(ctx context.Context, conductor *models.Conductor) error {
	conductor.ID = uuid.New()
	conductor.TotalTickets = 0
	conductor.TotalEarnings = 0
	now := time.Now()
	conductor.LastActive = now
	conductor.CreatedAt = now

	query := `
		INSERT INTO conductors (id, agency_id, agency_code, name, email, phone, username, password,
			total_tickets, total_earnings, last_active, created_at)
		VALUES (:id, :agency_id, :agency_code, :name, :email, :phone, :username, :password,
			:total_tickets, :total_earnings, :last_active, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, conductor); err != nil {
		return fmt.Errorf("failed to insert conductor: %w", err)
	}

	return nil
}

// GetByID retrieves a conductor by id
func (r *ConductorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Conductor, error) {
	var conductor models.Conductor
	query := `SELECT ` + conductorColumns + ` FROM conductors WHERE id = $1`

	err := r.db.GetContext(ctx, &conductor, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("conductor not found")
		}
		return nil, fmt.Errorf("failed to get conductor: %w", err)
	}

	return &conductor, nil
}

// GetByAgencyCodeAndUsername retrieves a conductor by its agency code and
// login username.
func (r *ConductorRepo) GetByAgencyCodeAndUsername(ctx context.Context, agencyCode, username string) (*models.Conductor, error) {
	var conductor models.Conductor
	query := `SELECT ` + conductorColumns + ` FROM conductors WHERE agency_code = $1 AND username = $2`

	err := r.db.GetContext(ctx, &conductor, query, agencyCode, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("conductor not found")
		}
		return nil, fmt.Errorf("failed to get conductor: %w", err)
	}

	return &conductor, nil
}

// List returns all conductors
func (r *ConductorRepo) List(ctx context.Context) ([]models.Conductor, error) {
	conductors := []models.Conductor{}
	query := `SELECT ` + conductorColumns + ` FROM conductors ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &conductors, query); err != nil {
		return nil, fmt.Errorf("failed to list conductors: %w", err)
	}

	return conductors, nil
}

// ListByAgency returns the conductors employed by an agency
func (r *ConductorRepo) ListByAgency(ctx context.Context, agencyID uuid.UUID) ([]models.Conductor, error) {
	conductors := []models.Conductor{}
	query := `SELECT ` + conductorColumns + ` FROM conductors WHERE agency_id = $1 ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &conductors, query, agencyID); err != nil {
		return nil, fmt.Errorf("failed to list agency conductors: %w", err)
	}

	return conductors, nil
}

// Update applies a merge-on-id partial update and returns the new row.
func (r *ConductorRepo) Update(ctx context.Context, id uuid.UUID, updates *models.ConductorUpdate) (*models.Conductor, error) {
	setClauses := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if updates.Name != nil {
		setClauses = append(setClauses, "name = "+arg(*updates.Name))
	}
	if updates.Email != nil {
		setClauses = append(setClauses, "email = "+arg(*updates.Email))
	}
	if updates.Phone != nil {
		setClauses = append(setClauses, "phone = "+arg(*updates.Phone))
	}
	if updates.Username != nil {
		setClauses = append(setClauses, "username = "+arg(*updates.Username))
	}
	if updates.Password != nil {
		setClauses = append(setClauses, "password = "+arg(*updates.Password))
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	var conductor models.Conductor
	query := fmt.Sprintf(`UPDATE conductors SET %s WHERE id = %s RETURNING `+conductorColumns,
		strings.Join(setClauses, ", "), arg(id))

	err := r.db.GetContext(ctx, &conductor, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("conductor not found")
		}
		return nil, fmt.Errorf("failed to update conductor: %w", err)
	}

	return &conductor, nil
}

// Delete removes a conductor
func (r *ConductorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM conductors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete conductor: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete conductor: %w", err)
	}
	if affected == 0 {
		return apperr.NotFound("conductor not found")
	}

	return nil
}

// IncrementStats applies the ticket-issuance side effect in a single
// statement. Counters only ever grow. A row count of zero means the
// conductor does not exist, which issuance treats as a silent skip.
func (r *ConductorRepo) IncrementStats(ctx context.Context, id uuid.UUID, fare float64, now time.Time) error {
	query := `
		UPDATE conductors
		SET total_tickets = total_tickets + 1,
			total_earnings = total_earnings + $2,
			last_active = $3
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id, fare, now); err != nil {
		return fmt.Errorf("failed to increment conductor stats: %w", err)
	}

	return nil
}
