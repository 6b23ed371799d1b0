package health

import (
	"encoding/json"
	"net/http"

	"github.com/nilsiker/portfolio/internal/app/system/route"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status string `json:"status"`
	Routes int    `json:"routes"`
}

// Serve handles GET /health.
//
// Always 200 and
//
//	{ "status":"ok", "routes":6 }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status: "ok",
		Routes: len(route.All()),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Warn("health-check: write response", zap.Error(err))
	}
}
