package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type healthResponse struct {
	Status string `json:"status"`
}

// getHealth reports the overall status kept by the storage probe: 200 while
// serving, 503 otherwise.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resp, err := h.health.Check(r.Context(), &healthpb.HealthCheckRequest{})
	if err != nil {
		log.Err(err).Str("func", "Handler.getHealth").Msg("health check failed")
		utils.WriteJSON(w, healthResponse{Status: healthpb.HealthCheckResponse_UNKNOWN.String()}, http.StatusServiceUnavailable)
		return
	}

	status := http.StatusOK
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		status = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, healthResponse{Status: resp.GetStatus().String()}, status)
}
