package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/services/ticketing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBusUC(t *testing.T) (*BusUC, *mocks.MockBusRepo, *mocks.MockAgencyRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	busRepo := mocks.NewMockBusRepo(ctrl)
	agencyRepo := mocks.NewMockAgencyRepo(ctrl)
	uc := NewBusUC(busRepo, agencyRepo, &models.Config{})
	return uc, busRepo, agencyRepo
}

func TestBusCreate_MirrorsCapacity(t *testing.T) {
	uc, busRepo, agencyRepo := newBusUC(t)

	agencyID := uuid.New()
	agencyRepo.EXPECT().GetByID(gomock.Any(), agencyID).
		Return(&models.Agency{ID: agencyID, Status: models.AgencyStatusApproved}, nil)
	busRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Bus) error {
			assert.Equal(t, 45, b.TotalSeats)
			return nil
		})

	bus, err := uc.Create(context.Background(), &models.Bus{
		AgencyID: agencyID,
		Name:     "Laju 01",
		Plate:    "B 1234 XY",
		Capacity: 45,
	})

	require.NoError(t, err)
	assert.Equal(t, 45, bus.TotalSeats)
}

func TestBusCreate_UnapprovedAgency(t *testing.T) {
	uc, _, agencyRepo := newBusUC(t)

	agencyID := uuid.New()
	agencyRepo.EXPECT().GetByID(gomock.Any(), agencyID).
		Return(&models.Agency{ID: agencyID, Status: models.AgencyStatusPending}, nil)

	_, err := uc.Create(context.Background(), &models.Bus{
		AgencyID: agencyID,
		Name:     "Laju 01",
		Plate:    "B 1234 XY",
		Capacity: 45,
	})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestBusCreate_MissingFields(t *testing.T) {
	uc, _, _ := newBusUC(t)

	_, err := uc.Create(context.Background(), &models.Bus{AgencyID: uuid.New(), Name: "Laju 01"})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestBusList_ScopedByAgency(t *testing.T) {
	uc, busRepo, _ := newBusUC(t)
	ctx := context.Background()

	agencyID := uuid.New()
	busRepo.EXPECT().ListByAgency(ctx, agencyID).Return([]models.Bus{}, nil)
	_, err := uc.List(ctx, &agencyID)
	require.NoError(t, err)

	busRepo.EXPECT().List(ctx).Return([]models.Bus{}, nil)
	_, err = uc.List(ctx, nil)
	require.NoError(t, err)
}

func TestBusUpdate_RejectsNonPositiveCapacity(t *testing.T) {
	uc, _, _ := newBusUC(t)

	zero := 0
	_, err := uc.Update(context.Background(), uuid.New(), &models.BusUpdate{Capacity: &zero})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
