package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aixtrade/nothing/internal/interfaces/http/dto"
)

// Probe reports whether a listener is accepting and answering requests.
type Probe interface {
	Name() string
	Serving() bool
}

type HealthHandler struct {
	probes []Probe
}

func NewHealthHandler(probes ...Probe) *HealthHandler {
	return &HealthHandler{
		probes: probes,
	}
}

func (h *HealthHandler) Health(c *gin.Context) {
	services := make(map[string]string, len(h.probes))
	status := "healthy"

	for _, p := range h.probes {
		if p.Serving() {
			services[p.Name()] = "healthy"
		} else {
			services[p.Name()] = "unhealthy"
			status = "unhealthy"
		}
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  services,
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	for _, p := range h.probes {
		if !p.Serving() {
			c.JSON(http.StatusServiceUnavailable, dto.StatusResponse{
				Status: "not ready",
				Reason: p.Name() + " unavailable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ready"})
}

func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "alive"})
}
