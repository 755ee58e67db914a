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

const routeColumns = `id, agency_id, code, source, destination, fare, distance, estimated_time, sub_routes, created_at`

func scanRoute(row rowScanner) (*models.Route, error) {
	var route models.Route
	var subRoutes []byte

	err := row.Scan(
		&route.ID, &route.AgencyID, &route.Code, &route.Source, &route.Destination,
		&route.Fare, &route.Distance, &route.EstimatedTime, &subRoutes, &route.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(subRoutes, &route.SubRoutes); err != nil {
		return nil, fmt.Errorf("failed to decode sub-routes: %w", err)
	}

	return &route, nil
}

// Create inserts a route and pushes its id into the owning agency's list.
func (r *RouteRepo) Create(ctx context.Context, route *models.Route) error {
	route.ID = uuid.New()
	route.Code = strings.ToUpper(route.Code)
	route.CreatedAt = time.Now()
	if route.SubRoutes == nil {
		route.SubRoutes = []models.SubRoute{}
	}

	subRoutes, err := json.Marshal(route.SubRoutes)
	if err != nil {
		return fmt.Errorf("failed to encode sub-routes: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO routes (id, agency_id, code, source, destination, fare, distance, estimated_time, sub_routes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = tx.ExecContext(ctx, query,
		route.ID, route.AgencyID, route.Code, route.Source, route.Destination,
		route.Fare, route.Distance, route.EstimatedTime, subRoutes, route.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE agencies SET routes = routes || to_jsonb($2::text) WHERE id = $1`,
		route.AgencyID, route.ID.String())
	if err != nil {
		return fmt.Errorf("failed to append route to agency: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit route insert: %w", err)
	}

	return nil
}

// GetByID retrieves a route by id
func (r *RouteRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1`

	route, err := scanRoute(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("route not found")
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	return route, nil
}

func (r *RouteRepo) list(ctx context.Context, query string, args ...interface{}) ([]models.Route, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	defer rows.Close()

	routes := []models.Route{}
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		routes = append(routes, *route)
	}

	return routes, rows.Err()
}

// List returns all routes
func (r *RouteRepo) List(ctx context.Context) ([]models.Route, error) {
	return r.list(ctx, `SELECT `+routeColumns+` FROM routes ORDER BY created_at DESC`)
}

// ListByAgency returns the routes owned by an agency
func (r *RouteRepo) ListByAgency(ctx context.Context, agencyID uuid.UUID) ([]models.Route, error) {
	return r.list(ctx, `SELECT `+routeColumns+` FROM routes WHERE agency_id = $1 ORDER BY created_at DESC`, agencyID)
}

// Update applies a merge-on-id partial update and returns the new row.
// Changing estimated_time retroactively changes the occupancy window of
// every ticket already issued on the route.
func (r *RouteRepo) Update(ctx context.Context, id uuid.UUID, updates *models.RouteUpdate) (*models.Route, error) {
	setClauses := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if updates.Code != nil {
		setClauses = append(setClauses, "code = "+arg(strings.ToUpper(*updates.Code)))
	}
	if updates.Source != nil {
		setClauses = append(setClauses, "source = "+arg(*updates.Source))
	}
	if updates.Destination != nil {
		setClauses = append(setClauses, "destination = "+arg(*updates.Destination))
	}
	if updates.Fare != nil {
		setClauses = append(setClauses, "fare = "+arg(*updates.Fare))
	}
	if updates.Distance != nil {
		setClauses = append(setClauses, "distance = "+arg(*updates.Distance))
	}
	if updates.EstimatedTime != nil {
		setClauses = append(setClauses, "estimated_time = "+arg(*updates.EstimatedTime))
	}
	if updates.SubRoutes != nil {
		subRoutes, err := json.Marshal(*updates.SubRoutes)
		if err != nil {
			return nil, fmt.Errorf("failed to encode sub-routes: %w", err)
		}
		setClauses = append(setClauses, "sub_routes = "+arg(subRoutes))
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE routes SET %s WHERE id = %s RETURNING `+routeColumns,
		strings.Join(setClauses, ", "), arg(id))

	route, err := scanRoute(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("route not found")
		}
		return nil, fmt.Errorf("failed to update route: %w", err)
	}

	return route, nil
}

// Delete removes a route and pulls its id from the owning agency's list.
func (r *RouteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var agencyID uuid.UUID
	err = tx.QueryRowContext(ctx, `DELETE FROM routes WHERE id = $1 RETURNING agency_id`, id).Scan(&agencyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("route not found")
		}
		return fmt.Errorf("failed to delete route: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE agencies SET routes = routes - $2 WHERE id = $1`,
		agencyID, id.String())
	if err != nil {
		return fmt.Errorf("failed to remove route from agency: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit route delete: %w", err)
	}

	return nil
}
