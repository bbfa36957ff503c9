package server

import (
	"time"

	"ytdl-simpel/infrastructure/configuration"
	httpHandler "ytdl-simpel/interfaces/http"
	"ytdl-simpel/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	ytdlHandler httpHandler.IYTDlHandler,
	docHandler httpHandler.IDocHandler,
	healthHandler httpHandler.IHealthHandler,
	cfg configuration.Config,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(cors.New(corsConfig(cfg.CORS.AllowOrigins)))

	router.GET("/healthz", healthHandler.Healthz)
	router.GET("/doc", docHandler.Doc)

	api := router.Group("api")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}

	api.GET("/ytmp3", ytdlHandler.DownloadAudio)
	api.GET("/ytmp4", ytdlHandler.DownloadVideo)
	api.GET("/search", ytdlHandler.Search)
	api.GET("/validate", ytdlHandler.Validate)
	api.GET("/qualities", ytdlHandler.Qualities)

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}
