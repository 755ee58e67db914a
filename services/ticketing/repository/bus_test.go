package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusCreate_InsertsAndAppendsToAgency(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBusRepo(&models.Config{}, db)

	agencyID := uuid.New()
	bus := &models.Bus{AgencyID: agencyID, Name: "Laju 01", Plate: "B 1234 XY", Capacity: 45}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO buses").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE agencies SET buses = buses \|\| to_jsonb\(\$2::text\) WHERE id = \$1`).
		WithArgs(agencyID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), bus)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, bus.ID)
	assert.Equal(t, 45, bus.TotalSeats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBusDelete_PullsIDFromAgency(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBusRepo(&models.Config{}, db)

	busID := uuid.New()
	agencyID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM buses WHERE id = \$1 RETURNING agency_id`).
		WithArgs(busID).
		WillReturnRows(sqlmock.NewRows([]string{"agency_id"}).AddRow(agencyID))
	mock.ExpectExec(`UPDATE agencies SET buses = buses - \$2 WHERE id = \$1`).
		WithArgs(agencyID, busID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), busID)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBusDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBusRepo(&models.Config{}, db)

	busID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM buses WHERE id = \$1 RETURNING agency_id`).
		WithArgs(busID).
		WillReturnRows(sqlmock.NewRows([]string{"agency_id"}))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), busID)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBusUpdate_CapacityMirrorsTotalSeats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBusRepo(&models.Config{}, db)

	busID := uuid.New()
	capacity := 50

	rows := sqlmock.NewRows([]string{"id", "agency_id", "name", "plate", "capacity", "total_seats", "created_at"}).
		AddRow(busID, uuid.New(), "Laju 01", "B 1234 XY", capacity, capacity, time.Now())

	mock.ExpectQuery(`UPDATE buses SET capacity = \$1, total_seats = \$1 WHERE id = \$2 RETURNING`).
		WithArgs(capacity, busID).
		WillReturnRows(rows)

	bus, err := repo.Update(context.Background(), busID, &models.BusUpdate{Capacity: &capacity})

	require.NoError(t, err)
	assert.Equal(t, capacity, bus.Capacity)
	assert.Equal(t, capacity, bus.TotalSeats)
	require.NoError(t, mock.ExpectationsWereMet())
}
