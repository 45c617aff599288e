package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports store reachability
type Pinger interface {
	Ping(ctx context.Context) (time.Time, error)
}

type HealthController struct {
	pinger Pinger
}

func NewHealthController(pinger Pinger) *HealthController {
	return &HealthController{pinger: pinger}
}

// Ping handles the health check. It probes the database so load balancers
// see a failing instance when the store is unreachable.
func (h *HealthController) Ping(c *gin.Context) {
	now, err := h.pinger.Ping(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":       false,
			"error":    err.Error(),
			"database": "disconnected",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"time":     now,
		"database": "connected",
	})
}
