package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/probeworks/diligent/pkg/database"
	"github.com/probeworks/diligent/pkg/queue"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /healthz. Only the service's own components
// are checked: the database and this pod's worker pool. Collector health
// is surfaced through /metrics instead so a flaky upstream cannot get
// the pod restarted.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	var poolHealth *queue.PoolHealth
	if s.workerPool != nil {
		poolHealth = s.workerPool.Health()
	}
	if poolHealth != nil {
		if poolHealth.IsHealthy {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		} else {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := poolHealth.DBError
			if msg == "" {
				msg = healthStatusUnhealthy
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, HealthResponse{
		Status:     status,
		Database:   dbHealth,
		WorkerPool: poolHealth,
		Checks:     checks,
	})
}
