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
	"golang.org/x/crypto/bcrypt"
)

func newConductorUC(t *testing.T) (*ConductorUC, *mocks.MockConductorRepo, *mocks.MockAgencyRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	conductorRepo := mocks.NewMockConductorRepo(ctrl)
	agencyRepo := mocks.NewMockAgencyRepo(ctrl)
	uc := NewConductorUC(conductorRepo, agencyRepo, &models.Config{})
	return uc, conductorRepo, agencyRepo
}

func TestConductorCreate_InheritsAgencyCodeAndHashes(t *testing.T) {
	uc, conductorRepo, agencyRepo := newConductorUC(t)

	agencyID := uuid.New()
	agencyRepo.EXPECT().GetByID(gomock.Any(), agencyID).
		Return(&models.Agency{ID: agencyID, Code: "LAJ", Status: models.AgencyStatusApproved}, nil)
	conductorRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Conductor) error {
			assert.Equal(t, "LAJ", c.AgencyCode)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.Password), []byte("secret123")))
			return nil
		})

	conductor, err := uc.Create(context.Background(), &models.Conductor{
		AgencyID: agencyID,
		Name:     "Budi",
		Username: "budi",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Empty(t, conductor.Password)
}

func TestConductorCreate_UnapprovedAgency(t *testing.T) {
	uc, _, agencyRepo := newConductorUC(t)

	agencyID := uuid.New()
	agencyRepo.EXPECT().GetByID(gomock.Any(), agencyID).
		Return(&models.Agency{ID: agencyID, Status: models.AgencyStatusRejected}, nil)

	_, err := uc.Create(context.Background(), &models.Conductor{
		AgencyID: agencyID,
		Name:     "Budi",
		Username: "budi",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestConductorCreate_InvalidEmail(t *testing.T) {
	uc, _, _ := newConductorUC(t)

	_, err := uc.Create(context.Background(), &models.Conductor{
		AgencyID: uuid.New(),
		Name:     "Budi",
		Username: "budi",
		Password: "secret123",
		Email:    "not-an-email",
	})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestConductorUpdate_HashesNewPassword(t *testing.T) {
	uc, conductorRepo, _ := newConductorUC(t)

	id := uuid.New()
	newPassword := "rotated-secret"

	conductorRepo.EXPECT().Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, u *models.ConductorUpdate) (*models.Conductor, error) {
			require.NotNil(t, u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(newPassword)))
			return &models.Conductor{ID: id}, nil
		})

	_, err := uc.Update(context.Background(), id, &models.ConductorUpdate{Password: &newPassword})

	require.NoError(t, err)
}
