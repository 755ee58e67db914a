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

func TestIncrementStats_SingleStatement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConductorRepo(&models.Config{}, db)

	id := uuid.New()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE conductors").
		WithArgs(id, 150000.0, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementStats(context.Background(), id, 150000, now)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementStats_MissingConductorIsSilent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConductorRepo(&models.Config{}, db)

	id := uuid.New()
	now := time.Now()

	// Zero rows affected: the conductor was deleted after issuing. Not an
	// error; the ticket stands without the counter bump.
	mock.ExpectExec("UPDATE conductors").
		WithArgs(id, 150000.0, now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.IncrementStats(context.Background(), id, 150000, now)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConductorDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConductorRepo(&models.Config{}, db)

	id := uuid.New()
	mock.ExpectExec("DELETE FROM conductors WHERE id = \\$1").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), id)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConductorUpdate_PartialSetClause(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConductorRepo(&models.Config{}, db)

	id := uuid.New()
	name := "Budi Santoso"

	rows := sqlmock.NewRows([]string{
		"id", "agency_id", "agency_code", "name", "email", "phone", "username", "password",
		"total_tickets", "total_earnings", "last_active", "created_at",
	}).AddRow(id, uuid.New(), "LAJ", name, "", "", "budi", "hash", 0, 0.0, time.Now(), time.Now())

	mock.ExpectQuery("UPDATE conductors SET name = \\$1 WHERE id = \\$2 RETURNING").
		WithArgs(name, id).
		WillReturnRows(rows)

	conductor, err := repo.Update(context.Background(), id, &models.ConductorUpdate{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, name, conductor.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
