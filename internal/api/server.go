package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/stockmate/stockmate-api/internal/api/handler"
	"github.com/stockmate/stockmate-api/internal/api/handler/router"
	"github.com/stockmate/stockmate-api/internal/config"
	"github.com/stockmate/stockmate-api/internal/scheduler"
	"github.com/stockmate/stockmate-api/internal/usecases/authenticating"
	"github.com/stockmate/stockmate-api/internal/usecases/syncing"
	"github.com/stockmate/stockmate-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	companySyncer syncing.CompanySyncer,
	statementSyncer syncing.StatementSyncer,
	metricsSyncer syncing.MetricsSyncer,
	priceTargetSyncer syncing.PriceTargetSyncer,
	healthSyncer syncing.HealthSyncer,
	fullSyncer syncing.FullSyncer,
	authenticator authenticating.ServiceAuthenticator,
	companySyncService *scheduler.CompanySyncService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.CompanySync(companySyncer, fullSyncer)...),
		router.WithRoutes(handler.StatementSync(statementSyncer)...),
		router.WithRoutes(handler.MetricsSync(metricsSyncer)...),
		router.WithRoutes(handler.HealthSync(healthSyncer)...),
		router.WithRoutes(handler.PriceTargetSync(priceTargetSyncer)...),
		router.WithRoutes(handler.CronJobs(companySyncService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator, config.Auth.Enabled),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
