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

	"github.com/finxpert/advisor-api/internal/api/handler"
	"github.com/finxpert/advisor-api/internal/api/handler/router"
	"github.com/finxpert/advisor-api/internal/config"
	"github.com/finxpert/advisor-api/internal/usecases/advising"
	"github.com/finxpert/advisor-api/internal/usecases/campaigning"
	"github.com/finxpert/advisor-api/internal/usecases/portfolio"
	"github.com/finxpert/advisor-api/internal/usecases/tasking"
	"github.com/finxpert/advisor-api/internal/usecases/transacting"
	"github.com/finxpert/advisor-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	portfolioService portfolio.Aggregator,
	advisingService advising.Advisor,
	transactionService transacting.Executor,
	campaignService campaigning.Dispatcher,
	taskService tasking.Manager,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(portfolioService)...),
		router.WithRoutes(handler.Clients(portfolioService, taskService)...),
		router.WithRoutes(handler.Campaigns(portfolioService, campaignService)...),
		router.WithRoutes(handler.Compliance(portfolioService)...),
		router.WithRoutes(handler.Agent(advisingService)...),
		router.WithRoutes(handler.Transactions(transactionService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.Metrics(),
		middleware.AdvisorContext(
			config.Auth.Secret,
			config.Advisor.DefaultAdvisorID,
			config.Advisor.DefaultTenantID,
		),
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
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
