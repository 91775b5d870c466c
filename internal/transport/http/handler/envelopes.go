package handler

import (
	"net/http"

	"github.com/go-api-posts/internal/framework/rest"
)

// HealthEnvelope is the body of the health endpoint.
type HealthEnvelope struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	_ = rest.Write(w, rest.JSON(status, v))
}
