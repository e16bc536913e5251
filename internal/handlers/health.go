package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkerStatusProvider reports which workers are running
type WorkerStatusProvider interface {
	GetWorkerStatus() map[string]bool
}

// RosterSizer reports how many people are tracked
type RosterSizer interface {
	Len() int
}

type HealthHandler struct {
	workers WorkerStatusProvider
	roster  RosterSizer
}

func NewHealthHandler(workers WorkerStatusProvider, roster RosterSizer) *HealthHandler {
	return &HealthHandler{
		workers: workers,
		roster:  roster,
	}
}

// HealthCheck reports worker state and roster size. It answers 503 when a worker is down.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := h.workers.GetWorkerStatus()

	healthy := true
	for _, running := range status {
		if !running {
			healthy = false
		}
	}

	code := http.StatusOK
	state := "ok"
	if !healthy {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}

	c.JSON(code, gin.H{
		"status":  state,
		"workers": status,
		"people":  h.roster.Len(),
	})
}
