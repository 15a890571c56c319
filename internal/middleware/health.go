package middleware

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthStatus represents the liveness payload
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// HealthHandler always reports healthy; there are no dependencies to check.
func HealthHandler(version string, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthStatus{
			Status:    "healthy",
			Timestamp: now(),
			Version:   version,
		})
	}
}
