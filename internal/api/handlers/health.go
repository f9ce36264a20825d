package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

const readinessTimeout = 2 * time.Second

// Check reports whether one dependency of the gateway is usable.
type Check func(ctx context.Context) error

// RedisCheck pings the audio cache backend.
func RedisCheck(rdb *redis.Client) Check {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}

// CredentialCheck fails when the provider has no API key configured.
func CredentialCheck(provider string, keys func(string) (string, error)) Check {
	return func(context.Context) error {
		key, err := keys(provider)
		if err != nil {
			return err
		}
		if key == "" {
			return fmt.Errorf("no API key for %s", provider)
		}
		return nil
	}
}

// HealthHandler serves liveness and readiness. Readiness runs every named
// check and fails if any of them does.
type HealthHandler struct {
	checks map[string]Check
}

func NewHealthHandler(checks map[string]Check) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
	Failed []string          `json:"failed,omitempty"`
}

func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	out := readiness{Status: "ready", Checks: make(map[string]string, len(h.checks))}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			out.Checks[name] = "unhealthy: " + err.Error()
			out.Failed = append(out.Failed, name)
			continue
		}
		out.Checks[name] = "ok"
	}

	status := http.StatusOK
	if len(out.Failed) > 0 {
		sort.Strings(out.Failed)
		out.Status = "not ready"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, out)
}
