package handler

import (
	"net/http"
	"time"

	"github.com/airlens/airlens/internal/api/models"
	"github.com/airlens/airlens/internal/api/response"
	"github.com/airlens/airlens/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	registry  *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, registry *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		registry:  registry,
	}
}

// HealthCheck handles GET /ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   time.Now().UTC(),
		Details: map[string]any{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /ops/ready - readiness check.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   time.Now().UTC(),
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /ops/status - provider status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	status := models.SystemStatus{
		Status:    models.HealthStatusOK,
		Time:      time.Now().UTC(),
		Providers: []models.ProviderStatus{},
	}

	if h.registry != nil {
		for _, p := range h.registry.Health() {
			providerStatus := models.ProviderStatus{
				Provider:      p.Name,
				Status:        models.HealthStatusOK,
				CircuitState:  p.CircuitState.String(),
				LastSuccessAt: p.LastSuccessAt,
				LastFailureAt: p.LastFailureAt,
			}
			if !p.Healthy() {
				providerStatus.Status = models.HealthStatusDegraded
				status.Status = models.HealthStatusDegraded
				if p.LastError != "" {
					message := p.LastError
					providerStatus.Message = &message
				}
			}
			status.Providers = append(status.Providers, providerStatus)
		}
	}

	response.JSON(w, r, http.StatusOK, status)
}
