package middleware

import (
	"time"

	"ytdl-simpel/infrastructure/logger"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AccessLog writes one structured line per request.
func AccessLog() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		entry := logger.GetLogger().WithFields(log.Fields{
			"request_id": ctx.GetString(RequestIDKey),
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
			"status":     status,
			"latency":    time.Since(start).String(),
			"client_ip":  ctx.ClientIP(),
		})
		switch {
		case status >= 500:
			entry.Error("Request completed")
		case status >= 400:
			entry.Warn("Request completed")
		default:
			entry.Info("Request completed")
		}
	}
}
