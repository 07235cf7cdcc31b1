package adaptor

import (
	"context"
	"net/http"
	"time"

	"shareit/pkg/utils"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type SystemHandler struct {
	pinger Pinger
	log    *zap.Logger
}

func NewSystemHandler(pinger Pinger, log *zap.Logger) *SystemHandler {
	return &SystemHandler{
		pinger: pinger,
		log:    log.With(zap.String("handler", "system")),
	}
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.log.Error("Health check failed", zap.Error(err))
		utils.ResponseServiceUnavailable(w, "Database unavailable")
		return
	}

	utils.ResponseSuccess(w, "OK", map[string]string{"status": "ok"})
}

// Metrics handles GET /metrics
func (h *SystemHandler) Metrics() http.Handler {
	return promhttp.Handler()
}
