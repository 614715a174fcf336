package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hosammostafait/AICareerAdvisor/database"
)

type healthBody struct {
	Status struct {
		OK bool `json:"ok"`
	} `json:"status"`
	Checks map[string]struct {
		OK  bool   `json:"ok"`
		Err string `json:"err"`
	} `json:"checks"`
}

func check(t *testing.T, h *HealthCtrl) (int, healthBody) {
	t.Helper()
	e := echo.New()
	e.GET("/health", h.Health)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body healthBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealth(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "health.db"))
	require.NoError(t, err)

	code, body := check(t, NewHealthCtrl(db, true))
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, body.Status.OK)
	assert.True(t, body.Checks["database"].OK)
	assert.True(t, body.Checks["gemini"].OK)

	code, body = check(t, NewHealthCtrl(db, false))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.True(t, body.Checks["database"].OK)
	assert.False(t, body.Checks["gemini"].OK)
	assert.NotEmpty(t, body.Checks["gemini"].Err)
}

func TestHealth_NoDatabase(t *testing.T) {
	code, body := check(t, NewHealthCtrl(nil, true))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.False(t, body.Status.OK)
	assert.Equal(t, "gorm db is nil", body.Checks["database"].Err)
}
