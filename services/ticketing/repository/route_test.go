package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeRow(route models.Route) *sqlmock.Rows {
	subRoutes, _ := json.Marshal(route.SubRoutes)
	return sqlmock.NewRows([]string{
		"id", "agency_id", "code", "source", "destination", "fare", "distance",
		"estimated_time", "sub_routes", "created_at",
	}).AddRow(route.ID, route.AgencyID, route.Code, route.Source, route.Destination,
		route.Fare, route.Distance, route.EstimatedTime, subRoutes, route.CreatedAt)
}

func TestRouteCreate_UppercasesCodeAndAppendsToAgency(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRouteRepo(&models.Config{}, db)

	agencyID := uuid.New()
	route := &models.Route{
		AgencyID:      agencyID,
		Code:          "jkt-bdg",
		Source:        "Jakarta",
		Destination:   "Bandung",
		Fare:          150000,
		Distance:      150,
		EstimatedTime: 5,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO routes").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE agencies SET routes = routes \|\| to_jsonb\(\$2::text\) WHERE id = \$1`).
		WithArgs(agencyID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), route)

	require.NoError(t, err)
	assert.Equal(t, "JKT-BDG", route.Code)
	assert.NotNil(t, route.SubRoutes, "sub-routes default to an empty list")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteGetByID_DecodesSubRoutes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRouteRepo(&models.Config{}, db)

	want := models.Route{
		ID:            uuid.New(),
		AgencyID:      uuid.New(),
		Code:          "JKT-BDG",
		Source:        "Jakarta",
		Destination:   "Bandung",
		Fare:          150000,
		Distance:      150,
		EstimatedTime: 5,
		SubRoutes: []models.SubRoute{
			{Stop: "Bekasi", Fare: 50000, Distance: 30},
		},
		CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery(`SELECT (.+) FROM routes WHERE id = \$1`).
		WithArgs(want.ID).
		WillReturnRows(routeRow(want))

	route, err := repo.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.EstimatedTime, route.EstimatedTime)
	require.Len(t, route.SubRoutes, 1)
	assert.Equal(t, "Bekasi", route.SubRoutes[0].Stop)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRouteRepo(&models.Config{}, db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM routes WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "agency_id", "code", "source", "destination", "fare", "distance",
			"estimated_time", "sub_routes", "created_at",
		}))

	_, err := repo.GetByID(context.Background(), id)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteUpdate_EstimatedTime(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRouteRepo(&models.Config{}, db)

	id := uuid.New()
	est := 7.5

	updated := models.Route{
		ID: id, AgencyID: uuid.New(), Code: "JKT-BDG", Source: "Jakarta",
		Destination: "Bandung", Fare: 150000, Distance: 150, EstimatedTime: est,
		CreatedAt: time.Now(),
	}

	mock.ExpectQuery(`UPDATE routes SET estimated_time = \$1 WHERE id = \$2 RETURNING`).
		WithArgs(est, id).
		WillReturnRows(routeRow(updated))

	route, err := repo.Update(context.Background(), id, &models.RouteUpdate{EstimatedTime: &est})

	require.NoError(t, err)
	assert.Equal(t, est, route.EstimatedTime)
	require.NoError(t, mock.ExpectationsWereMet())
}
