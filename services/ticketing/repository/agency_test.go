package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgencyDelete_CascadeInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAgencyRepo(&models.Config{}, db)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM buses WHERE agency_id = \\$1").
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM routes WHERE agency_id = \\$1").
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM conductors WHERE agency_id = \\$1").
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM tickets WHERE agency_id = \\$1").
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectExec("DELETE FROM agencies WHERE id = \\$1").
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), id)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyDelete_UnknownAgencyRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAgencyRepo(&models.Config{}, db)

	id := uuid.New()

	mock.ExpectBegin()
	for _, table := range []string{"buses", "routes", "conductors", "tickets"} {
		mock.ExpectExec("DELETE FROM " + table + " WHERE agency_id = \\$1").
			WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec("DELETE FROM agencies WHERE id = \\$1").
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), id)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}
