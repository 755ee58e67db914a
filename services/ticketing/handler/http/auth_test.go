package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/lajubus/lajubus/internal/pkg/apperr"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/services/ticketing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockAuthUC)

	e := echo.New()
	body := `{"role": "admin", "username": "root", "password": "root-password"}`
	req := httptest.NewRequest(nethttp.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockAuthUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.LoginRequest) (*models.AuthResponse, error) {
			assert.Equal(t, models.RoleAdmin, req.Role)
			return &models.AuthResponse{
				Token: "signed-token",
				User:  models.AuthUser{ID: "admin", Role: models.RoleAdmin},
			}, nil
		})

	// Act
	err := handler.Login(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "signed-token", data["token"])
}

func TestLogin_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockAuthUC)

	e := echo.New()
	body := `{"role": "admin", "username": "root", "password": "wrong"}`
	req := httptest.NewRequest(nethttp.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockAuthUC.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, apperr.Unauthorized("invalid credentials"))

	require.NoError(t, handler.Login(c))
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestValidate_NoHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockAuthUC)

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, "/auth/validate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Validate(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, false, data["authenticated"])
}

func TestValidate_WithToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockAuthUC)

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, "/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockAuthUC.EXPECT().Validate("some-token").
		Return(&models.ValidateResponse{Authenticated: true, User: &models.AuthUser{ID: "admin"}})

	require.NoError(t, handler.Validate(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, true, data["authenticated"])
}
