package middleware

import (
	"net/http"

	"ytdl-simpel/domain/dto"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit applies one token bucket to every request passing through it.
// A non-positive rps disables limiting.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(ctx *gin.Context) { ctx.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(ctx *gin.Context) {
		if !limiter.Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Res{Status: false, Error: "Rate limit exceeded"})
			return
		}
		ctx.Next()
	}
}
