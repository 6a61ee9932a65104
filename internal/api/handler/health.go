package handler

import (
	"net/http"

	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/orchestrating"
	"github.com/vfg2006/marketplace-ads-api/pkg/log"
)

// GetHealthStatus verifica os providers e responde 200 para healthy ou
// degraded e 503 quando nenhum provider está saudável
func GetHealthStatus(service orchestrating.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		health := service.GetHealthStatus()

		status := http.StatusOK
		if health.Status == domain.ServiceStatusUnhealthy {
			status = http.StatusServiceUnavailable
		}

		logger.WithFields(log.Fields{
			"status":    health.Status,
			"providers": len(health.Providers),
		}).Info("health: provider health aggregated")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(health); err != nil {
			logger.WithError(err).Error("health: failed to encode response")
		}
	})
}
