package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// HealthStatus is the state of a single dependency check.
type HealthStatus struct {
	Status string `json:"status"`
}

// HealthResponse maps check names to their status.
type HealthResponse map[string]HealthStatus

// handleHealth probes the data directory with a throwaway write, since
// every game mutation ends in a file commit there.
func handleHealth(logger *slog.Logger, dataDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := HealthResponse{
			"storage": {Status: "ok"},
		}
		status := http.StatusOK

		probe := filepath.Join(dataDir, ".healthz")
		if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
			logger.Error("health check failed", "name", "storage", "error", err)
			checks["storage"] = HealthStatus{Status: "error"}
			status = http.StatusServiceUnavailable
		} else {
			os.Remove(probe)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(checks)
	}
}
