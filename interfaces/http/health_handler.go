package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type IHealthHandler interface {
	Healthz(ctx *gin.Context)
}

type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler() IHealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

// Healthz returns OK for health checks
func (h *HealthHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	})
}
