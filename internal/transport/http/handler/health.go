package handler

import (
	"net/http"
)

// HealthHandler reports liveness and the configured storage driver.
type HealthHandler struct {
	storage string
}

func NewHealthHandler(storage string) *HealthHandler { return &HealthHandler{storage: storage} }

func (h *HealthHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthEnvelope{Status: "ok", Storage: h.storage})
}
