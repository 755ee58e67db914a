package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyRequest(t *testing.T, checks ...Check) (*httptest.ResponseRecorder, map[string]string) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewReadyHandler(checks...)(c))

	var status map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	return rec, status
}

func TestReady_AllChecksHealthy(t *testing.T) {
	rec, status := readyRequest(t,
		Check{Name: "postgres", Run: func(context.Context) error { return nil }},
		Check{Name: "redis", Run: func(context.Context) error { return nil }},
	)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", status["postgres"])
	assert.Equal(t, "ok", status["redis"])
}

func TestReady_FailingCheckReported(t *testing.T) {
	rec, status := readyRequest(t,
		Check{Name: "postgres", Run: func(context.Context) error { return nil }},
		Check{Name: "redis", Run: func(context.Context) error { return errors.New("connection refused") }},
	)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "ok", status["postgres"])
	assert.Equal(t, "connection refused", status["redis"])
}

func TestReady_NoChecks(t *testing.T) {
	rec, _ := readyRequest(t)
	assert.Equal(t, http.StatusOK, rec.Code)
}
