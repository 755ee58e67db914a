package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/services/ticketing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAgencyUC(t *testing.T) (*AgencyUC, *mocks.MockAgencyRepo, *mocks.MockTicketingGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockAgencyRepo(ctrl)
	gw := mocks.NewMockTicketingGW(ctrl)
	uc := NewAgencyUC(repo, gw, &models.Config{})
	return uc, repo, gw
}

func registrationForm() *models.Agency {
	return &models.Agency{
		Name:                   "Laju Transport",
		Username:               "laju-admin",
		Password:               "secret123",
		LegalStatus:            "PT",
		YearOfEstablishment:    2015,
		HeadOfficeAddress:      "Jl. Sudirman 1",
		City:                   "Jakarta",
		State:                  "DKI Jakarta",
		Pincode:                "10110",
		AdminName:              "Andi",
		AdminDesignation:       "Director",
		AdminEmail:             "andi@laju.example",
		AdminPhone:             "+628111222333",
		TotalBuses:             12,
		PrimaryBusTypes:        []string{"AC Seater"},
		KeyOperatingRoutes:     "Jakarta-Bandung",
		CurrentTicketingMethod: "manual",
	}
}

func TestRegister_CreatesPendingAgency(t *testing.T) {
	uc, repo, _ := newAgencyUC(t)
	form := registrationForm()

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Agency) error {
			assert.Equal(t, models.AgencyStatusPending, a.Status)
			assert.Equal(t, "LAJ", a.Code)
			assert.Equal(t, form.AdminEmail, a.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.Password), []byte("secret123")))
			return nil
		})

	created, err := uc.Register(context.Background(), form)

	require.NoError(t, err)
	assert.Empty(t, created.Password, "hash must not leak in the response")
	assert.Equal(t, models.AgencyStatusPending, created.Status)
}

func TestRegister_MissingFormFields(t *testing.T) {
	uc, _, _ := newAgencyUC(t)

	form := registrationForm()
	form.LegalStatus = ""

	_, err := uc.Register(context.Background(), form)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCreateByAdmin_ApprovedImmediately(t *testing.T) {
	uc, repo, _ := newAgencyUC(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Agency) error {
			assert.Equal(t, models.AgencyStatusApproved, a.Status)
			assert.Equal(t, "EXPRESS", a.Code)
			return nil
		})

	created, err := uc.CreateByAdmin(context.Background(), &models.Agency{
		Name:     "Express Lines",
		Code:     "express",
		Username: "express-admin",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, models.AgencyStatusApproved, created.Status)
}

func TestApprove_SetsReviewAndPublishes(t *testing.T) {
	uc, repo, gw := newAgencyUC(t)
	reviewedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return reviewedAt }

	id := uuid.New()
	approved := &models.Agency{ID: id, Status: models.AgencyStatusApproved, ReviewedBy: "admin"}

	repo.EXPECT().SetReview(gomock.Any(), id, models.AgencyStatusApproved, "admin", "", reviewedAt).
		Return(approved, nil)
	gw.EXPECT().PublishAgencyReviewed(gomock.Any(), gomock.Any()).Return(nil)

	agency, err := uc.Approve(context.Background(), id, "admin")

	require.NoError(t, err)
	assert.Equal(t, models.AgencyStatusApproved, agency.Status)
}

func TestReject_RequiresReason(t *testing.T) {
	uc, _, _ := newAgencyUC(t)

	_, err := uc.Reject(context.Background(), uuid.New(), "admin", "")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestReject_SetsReviewAndPublishes(t *testing.T) {
	uc, repo, gw := newAgencyUC(t)
	reviewedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return reviewedAt }

	id := uuid.New()
	rejected := &models.Agency{
		ID:              id,
		Status:          models.AgencyStatusRejected,
		ReviewedBy:      "admin",
		RejectionReason: "incomplete documents",
	}

	repo.EXPECT().SetReview(gomock.Any(), id, models.AgencyStatusRejected, "admin", "incomplete documents", reviewedAt).
		Return(rejected, nil)
	gw.EXPECT().PublishAgencyReviewed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.AgencyReviewedEvent) error {
			assert.Equal(t, "incomplete documents", e.Reason)
			return nil
		})

	agency, err := uc.Reject(context.Background(), id, "admin", "incomplete documents")

	require.NoError(t, err)
	assert.Equal(t, models.AgencyStatusRejected, agency.Status)
}

func TestUpdate_HashesNewPassword(t *testing.T) {
	uc, repo, _ := newAgencyUC(t)

	id := uuid.New()
	newPassword := "rotated-secret"

	repo.EXPECT().Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, u *models.AgencyUpdate) (*models.Agency, error) {
			require.NotNil(t, u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(newPassword)))
			return &models.Agency{ID: id}, nil
		})

	_, err := uc.Update(context.Background(), id, &models.AgencyUpdate{Password: &newPassword})

	require.NoError(t, err)
}

func TestDelete_Cascades(t *testing.T) {
	uc, repo, _ := newAgencyUC(t)

	id := uuid.New()
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	err := uc.Delete(context.Background(), id)

	require.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	uc, repo, _ := newAgencyUC(t)

	id := uuid.New()
	repo.EXPECT().Delete(gomock.Any(), id).Return(apperr.NotFound("agency not found"))

	err := uc.Delete(context.Background(), id)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
