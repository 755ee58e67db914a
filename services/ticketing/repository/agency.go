package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/models"
)

const agencyColumns = `id, code, name, username, password, email, phone,
	buses, routes,
	legal_status, year_of_establishment, company_registration_number, gst_tax_id,
	head_office_address, city, state, pincode,
	admin_name, admin_designation, admin_email, admin_phone, alternate_phone,
	total_buses, primary_bus_types, key_operating_routes, current_ticketing_method,
	expected_go_live_date, specific_requirements,
	status, reviewed_at, reviewed_by, rejection_reason, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAgency(row rowScanner) (*models.Agency, error) {
	var agency models.Agency
	var buses, routes, busTypes []byte
	var reviewedAt sql.NullTime

	err := row.Scan(
		&agency.ID, &agency.Code, &agency.Name, &agency.Username, &agency.Password,
		&agency.Email, &agency.Phone,
		&buses, &routes,
		&agency.LegalStatus, &agency.YearOfEstablishment, &agency.CompanyRegistrationNumber,
		&agency.GSTTaxID, &agency.HeadOfficeAddress, &agency.City, &agency.State, &agency.Pincode,
		&agency.AdminName, &agency.AdminDesignation, &agency.AdminEmail, &agency.AdminPhone,
		&agency.AlternatePhone, &agency.TotalBuses, &busTypes, &agency.KeyOperatingRoutes,
		&agency.CurrentTicketingMethod, &agency.ExpectedGoLiveDate, &agency.SpecificRequirements,
		&agency.Status, &reviewedAt, &agency.ReviewedBy, &agency.RejectionReason,
		&agency.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reviewedAt.Valid {
		agency.ReviewedAt = &reviewedAt.Time
	}
	if err := json.Unmarshal(buses, &agency.Buses); err != nil {
		return nil, fmt.Errorf("failed to decode agency buses: %w", err)
	}
	if err := json.Unmarshal(routes, &agency.Routes); err != nil {
		return nil, fmt.Errorf("failed to decode agency routes: %w", err)
	}
	if err := json.Unmarshal(busTypes, &agency.PrimaryBusTypes); err != nil {
		return nil, fmt.Errorf("failed to decode agency bus types: %w", err)
	}

	return &agency, nil
}

// Create inserts a new agency. The caller is expected to have hashed the
// password and set the initial status.
func (r *AgencyRepo) Create(ctx context.Context, agency *models.Agency) error {
	agency.ID = uuid.New()
	agency.CreatedAt = time.Now()
	if agency.Buses == nil {
		agency.Buses = []string{}
	}
	if agency.Routes == nil {
		agency.Routes = []string{}
	}
	if agency.PrimaryBusTypes == nil {
		agency.PrimaryBusTypes = []string{}
	}

	buses, _ := json.Marshal(agency.Buses)
	routes, _ := json.Marshal(agency.Routes)
	busTypes, _ := json.Marshal(agency.PrimaryBusTypes)

	query := `
		INSERT INTO agencies (` + agencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33)
	`
	_, err := r.db.ExecContext(ctx, query,
		agency.ID, agency.Code, agency.Name, agency.Username, agency.Password,
		agency.Email, agency.Phone,
		buses, routes,
		agency.LegalStatus, agency.YearOfEstablishment, agency.CompanyRegistrationNumber,
		agency.GSTTaxID, agency.HeadOfficeAddress, agency.City, agency.State, agency.Pincode,
		agency.AdminName, agency.AdminDesignation, agency.AdminEmail, agency.AdminPhone,
		agency.AlternatePhone, agency.TotalBuses, busTypes, agency.KeyOperatingRoutes,
		agency.CurrentTicketingMethod, agency.ExpectedGoLiveDate, agency.SpecificRequirements,
		agency.Status, agency.ReviewedAt, agency.ReviewedBy, agency.RejectionReason,
		agency.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert agency: %w", err)
	}

	return nil
}

// GetByID retrieves an agency by id
func (r *AgencyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE id = $1`

	agency, err := scanAgency(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("agency not found")
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}

	return agency, nil
}

// GetByCodeAndUsername retrieves an agency by its code and login username.
func (r *AgencyRepo) GetByCodeAndUsername(ctx context.Context, code, username string) (*models.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE code = $1 AND username = $2`

	agency, err := scanAgency(r.db.QueryRowContext(ctx, query, code, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("agency not found")
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}

	return agency, nil
}

func (r *AgencyRepo) list(ctx context.Context, query string, args ...interface{}) ([]models.Agency, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list agencies: %w", err)
	}
	defer rows.Close()

	agencies := []models.Agency{}
	for rows.Next() {
		agency, err := scanAgency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agency: %w", err)
		}
		agencies = append(agencies, *agency)
	}

	return agencies, rows.Err()
}

// List returns every agency regardless of status, for the admin dashboard.
func (r *AgencyRepo) List(ctx context.Context) ([]models.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// ListByStatus returns agencies in the given approval state.
func (r *AgencyRepo) ListByStatus(ctx context.Context, status string) ([]models.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE status = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, status)
}

// Update applies a merge-on-id partial update and returns the new row.
func (r *AgencyRepo) Update(ctx context.Context, id uuid.UUID, updates *models.AgencyUpdate) (*models.Agency, error) {
	setClauses := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if updates.Name != nil {
		setClauses = append(setClauses, "name = "+arg(*updates.Name))
	}
	if updates.Code != nil {
		setClauses = append(setClauses, "code = "+arg(strings.ToUpper(*updates.Code)))
	}
	if updates.Username != nil {
		setClauses = append(setClauses, "username = "+arg(*updates.Username))
	}
	if updates.Password != nil {
		setClauses = append(setClauses, "password = "+arg(*updates.Password))
	}
	if updates.Email != nil {
		setClauses = append(setClauses, "email = "+arg(*updates.Email))
	}
	if updates.Phone != nil {
		setClauses = append(setClauses, "phone = "+arg(*updates.Phone))
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE agencies SET %s WHERE id = %s RETURNING `+agencyColumns,
		strings.Join(setClauses, ", "), arg(id))

	agency, err := scanAgency(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("agency not found")
		}
		return nil, fmt.Errorf("failed to update agency: %w", err)
	}

	return agency, nil
}

// SetReview records an approval decision. It intentionally does not guard
// against reviewing a non-pending agency; re-approving rewrites the same
// fields.
func (r *AgencyRepo) SetReview(ctx context.Context, id uuid.UUID, status, reviewedBy, reason string, reviewedAt time.Time) (*models.Agency, error) {
	query := `
		UPDATE agencies
		SET status = $2, reviewed_by = $3, rejection_reason = $4, reviewed_at = $5
		WHERE id = $1
		RETURNING ` + agencyColumns

	agency, err := scanAgency(r.db.QueryRowContext(ctx, query, id, status, reviewedBy, reason, reviewedAt))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("agency not found")
		}
		return nil, fmt.Errorf("failed to review agency: %w", err)
	}

	return agency, nil
}

// Delete removes the agency and everything referencing it, in one
// transaction: buses, routes, conductors, tickets, then the agency itself.
func (r *AgencyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"buses", "routes", "conductors", "tickets"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE agency_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete agency %s: %w", table, err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM agencies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete agency: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete agency: %w", err)
	}
	if affected == 0 {
		return apperr.NotFound("agency not found")
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit agency delete: %w", err)
	}

	return nil
}
