package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gpuadvisor/internal/controllers"
	"gpuadvisor/internal/middleware"
	"gpuadvisor/internal/models"
	"gpuadvisor/internal/observability"
	"gpuadvisor/internal/routes"
	"gpuadvisor/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API, Prometheus metrics and the live stats WebSocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from server.addr)")
	return cmd
}

// handlers builds every service behind the HTTP API
func (a *app) handlers() *controllers.Handlers {
	catalog := a.catalog()
	predictor := a.predictor(catalog)
	metrics := observability.NewMetrics()

	cache := services.NewGPUCache(a.gpuProvider(), a.cfg.Monitoring.RefreshRate)
	hub := services.NewWebSocketHub(services.SystemStatsSource(cache, catalog), a.cfg.Monitoring.RefreshRate)
	history := services.NewHistoryCollector(cache, a.cfg.Monitoring.HistoryPoints)
	history.OnSample = func(_ *models.GPUInfo, sample models.GPUHistory) {
		metrics.ObserveGPU(sample)
		hub.Broadcast(services.WebSocketMessage{Type: "sample", Timestamp: sample.Timestamp, Data: sample})
	}

	advisor, err := a.advisor(predictor)
	if err != nil {
		if !errors.Is(err, services.ErrAdvisorDisabled) {
			a.logger.Warn("AI advisor unavailable", "error", err)
		}
		advisor = nil
	}

	return &controllers.Handlers{
		Predictor:      predictor,
		Catalog:        catalog,
		GPU:            cache,
		History:        history,
		Hub:            hub,
		Auth:           services.NewAuthService(a.cfg.Server.SecretKey, "", a.cfg.Server.TokenExpiry),
		Advisor:        advisor,
		Metrics:        metrics,
		Security:       middleware.NewSecurityLogger(a.logger),
		Validator:      middleware.NewInputValidator(),
		Preferences:    a.cfg.Preferences,
		AllowedOrigins: a.cfg.Server.AllowedOrigins,
	}
}

func (a *app) serve(ctx context.Context, addr string) error {
	if !strings.EqualFold(a.cfg.Log.Level, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	h := a.handlers()
	h.History.Start(ctx, a.cfg.Monitoring.RefreshRate)
	defer h.History.Stop()
	go h.Hub.Run(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", "addr", addr, "advisor", h.Advisor != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
