package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyz(t *testing.T, h *HealthHandler) (int, readiness) {
	t.Helper()
	w := httptest.NewRecorder()
	h.Readyz(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	var out readiness
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w.Code, out
}

func TestReadyz_NoChecks(t *testing.T) {
	code, out := readyz(t, NewHealthHandler(nil))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ready", out.Status)
	assert.Empty(t, out.Checks)
}

func TestReadyz_FailingCheck(t *testing.T) {
	h := NewHealthHandler(map[string]Check{
		"redis": func(context.Context) error { return errors.New("connection refused") },
		"other": func(context.Context) error { return nil },
	})

	code, out := readyz(t, h)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "not ready", out.Status)
	assert.Equal(t, []string{"redis"}, out.Failed)
	assert.Equal(t, "unhealthy: connection refused", out.Checks["redis"])
	assert.Equal(t, "ok", out.Checks["other"])
}

func TestCredentialCheck(t *testing.T) {
	keys := func(p string) (string, error) {
		if p == "gemini" {
			return "g", nil
		}
		return "", nil
	}

	assert.NoError(t, CredentialCheck("gemini", keys)(context.Background()))
	err := CredentialCheck("openai", keys)(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai")
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	NewHealthHandler(nil).Healthz(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
