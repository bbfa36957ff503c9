package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ytdlclient "ytdl-simpel/infrastructure/clients/ytdl"
	"ytdl-simpel/infrastructure/configuration"
	"ytdl-simpel/infrastructure/logger"
	httpHandler "ytdl-simpel/interfaces/http"
	"ytdl-simpel/server"
	"ytdl-simpel/usecase"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	// OS env still has precedence over these files
	loaded := configuration.LoadEnvFromFile("config.env", ".env")
	logger.GetLogger().WithField("files", loaded).Info("Environment files loaded")

	cfg, err := configuration.LoadConfig()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Invalid configuration")
		os.Exit(1)
	}
	logger.Configure(cfg.Logger.Level, cfg.Logger.Format)
	gin.SetMode(cfg.App.Mode)

	ytdlClient, err := ytdlclient.NewYTDlClient(cfg)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot create backend client")
		os.Exit(1)
	}
	logger.GetLogger().WithFields(map[string]interface{}{
		"backend": cfg.Backend.BaseURL,
		"timeout": cfg.Backend.Timeout.String(),
	}).Info("Backend client initialized")

	ytdlUseCase := usecase.NewYTDlUseCase(ytdlClient)
	ytdlHandler := httpHandler.NewYTDlHandler(ytdlUseCase)
	docHandler := httpHandler.NewDocHandler(cfg.Backend.Endpoints, cfg.Quality)
	healthHandler := httpHandler.NewHealthHandler()

	router := server.InitiateRouter(ytdlHandler, docHandler, healthHandler, cfg)

	g, ctx := errgroup.WithContext(ctx)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Downloads wait on the backend for up to the client timeout.
		WriteTimeout: cfg.Backend.Timeout + 10*time.Second,
	}

	logger.GetLogger().WithField("port", cfg.App.Port).Info("Starting application")
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Graceful shutdown incomplete")
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
	logger.GetLogger().Info("Application stopped")
}
