package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lajubus/lajubus/internal/pkg/middleware"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/services/ticketing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgencyContext(method, target, body string, user *models.AuthUser) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		middleware.SetAuthUser(c, *user)
	}
	return c, rec
}

func TestRegisterAgency_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAgencyUC := mocks.NewMockAgencyUC(ctrl)
	handler := NewAgencyHandler(mockAgencyUC)

	body := `{"name": "Laju Transport", "username": "laju", "password": "secret123", "adminEmail": "admin@laju.id"}`
	c, rec := newAgencyContext(nethttp.MethodPost, "/agencies/register", body, nil)

	mockAgencyUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, agency *models.Agency) (*models.Agency, error) {
			assert.Equal(t, "Laju Transport", agency.Name)
			created := *agency
			created.ID = uuid.New()
			created.Status = models.AgencyStatusPending
			return &created, nil
		})

	require.NoError(t, handler.Register(c))
	assert.Equal(t, nethttp.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestListAgencies_PendingFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAgencyUC := mocks.NewMockAgencyUC(ctrl)
	handler := NewAgencyHandler(mockAgencyUC)

	c, rec := newAgencyContext(nethttp.MethodGet, "/agencies?status=pending", "",
		&models.AuthUser{ID: "admin", Role: models.RoleAdmin})

	mockAgencyUC.EXPECT().
		ListPending(gomock.Any()).
		Return([]models.Agency{{ID: uuid.New(), Status: models.AgencyStatusPending}}, nil)

	require.NoError(t, handler.List(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestApproveAgency_ReviewerFromToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAgencyUC := mocks.NewMockAgencyUC(ctrl)
	handler := NewAgencyHandler(mockAgencyUC)

	agencyID := uuid.New()
	c, rec := newAgencyContext(nethttp.MethodPut, "/agencies/"+agencyID.String()+"/approve", "",
		&models.AuthUser{ID: "admin-1", Role: models.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues(agencyID.String())

	mockAgencyUC.EXPECT().
		Approve(gomock.Any(), agencyID, "admin-1").
		Return(&models.Agency{ID: agencyID, Status: models.AgencyStatusApproved}, nil)

	require.NoError(t, handler.Approve(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestRejectAgency_PassesReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAgencyUC := mocks.NewMockAgencyUC(ctrl)
	handler := NewAgencyHandler(mockAgencyUC)

	agencyID := uuid.New()
	c, rec := newAgencyContext(nethttp.MethodPut, "/agencies/"+agencyID.String()+"/reject",
		`{"reason": "incomplete documents"}`,
		&models.AuthUser{ID: "admin-1", Role: models.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues(agencyID.String())

	mockAgencyUC.EXPECT().
		Reject(gomock.Any(), agencyID, "admin-1", "incomplete documents").
		Return(&models.Agency{ID: agencyID, Status: models.AgencyStatusRejected}, nil)

	require.NoError(t, handler.Reject(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestUpdateAgency_OtherAgencyForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAgencyUC := mocks.NewMockAgencyUC(ctrl)
	handler := NewAgencyHandler(mockAgencyUC)

	targetID := uuid.New()
	c, rec := newAgencyContext(nethttp.MethodPut, "/agencies/"+targetID.String(),
		`{"name": "Hijack"}`,
		&models.AuthUser{ID: uuid.NewString(), Role: models.RoleAgency, AgencyID: uuid.NewString()})
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())

	// No usecase call expected.
	require.NoError(t, handler.Update(c))
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func TestUpdateAgency_SelfAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAgencyUC := mocks.NewMockAgencyUC(ctrl)
	handler := NewAgencyHandler(mockAgencyUC)

	agencyID := uuid.New()
	name := "Laju Transport Renamed"
	c, rec := newAgencyContext(nethttp.MethodPut, "/agencies/"+agencyID.String(),
		`{"name": "`+name+`"}`,
		&models.AuthUser{ID: agencyID.String(), Role: models.RoleAgency, AgencyID: agencyID.String()})
	c.SetParamNames("id")
	c.SetParamValues(agencyID.String())

	mockAgencyUC.EXPECT().
		Update(gomock.Any(), agencyID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, updates *models.AgencyUpdate) (*models.Agency, error) {
			require.NotNil(t, updates.Name)
			assert.Equal(t, name, *updates.Name)
			return &models.Agency{ID: agencyID, Name: name}, nil
		})

	require.NoError(t, handler.Update(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestDeleteAgency_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAgencyUC := mocks.NewMockAgencyUC(ctrl)
	handler := NewAgencyHandler(mockAgencyUC)

	c, rec := newAgencyContext(nethttp.MethodDelete, "/agencies/not-a-uuid", "",
		&models.AuthUser{ID: "admin", Role: models.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}
