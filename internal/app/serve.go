package app

import (
	"context"

	"github.com/Egor213/LogAnalyzer/internal/config"
	grpccontroller "github.com/Egor213/LogAnalyzer/internal/controller/grpc"
	httpv1 "github.com/Egor213/LogAnalyzer/internal/controller/http/v1"
	"github.com/Egor213/LogAnalyzer/internal/domain"
	"github.com/Egor213/LogAnalyzer/internal/metrics"
	"github.com/Egor213/LogAnalyzer/internal/service"
	errorsUtils "github.com/Egor213/LogAnalyzer/pkg/errors"
	"github.com/Egor213/LogAnalyzer/pkg/grpcserver"
	"github.com/Egor213/LogAnalyzer/pkg/httpserver"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

// healthTracking flips the gRPC health status with every analysis result.
type healthTracking struct {
	service.Stats
	health *grpccontroller.Health
}

func (h healthTracking) Analyze(ctx context.Context) (domain.Report, error) {
	r, err := h.Stats.Analyze(ctx)
	h.health.SetReady(err == nil)
	return r, err
}

func serve(ctx context.Context, cfg *config.Config, services *service.Services, cnt *metrics.Counters) error {
	health := grpccontroller.NewHealth()
	defer health.Shutdown()

	stats := healthTracking{Stats: services.Stats, health: health}

	// First analysis. A failure keeps the servers up, POST /stats/refresh retries.
	if _, err := stats.Analyze(ctx); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}

	// gRPC Server
	log.Info("Starting gRPC server...")
	log.Debugf("gRPC server port: %s", cfg.GRPC.Port)
	grpcServer, err := grpcserver.New(grpccontroller.RegisterServices(health),
		grpcserver.WithPort(cfg.GRPC.Port),
		grpcserver.WithShutdownTimeout(cfg.GRPC.ShutdownTimeout),
	)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	// HTTP server
	log.Info("Starting HTTP server...")
	log.Debugf("HTTP server port: %s", cfg.HTTP.Port)
	handler := echo.New()
	handler.HideBanner = true
	httpv1.ConfigureRouter(handler, &service.Services{Stats: stats}, cnt)
	metrics.ConfigureRouter(handler, nil)
	httpServer, err := httpserver.New(handler,
		httpserver.WithPort(cfg.HTTP.Port),
		httpserver.WithReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WithWriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.WithShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)
	if err != nil {
		grpcServer.Shutdown()
		return errorsUtils.WrapPathErr(err)
	}

	// Waiting signal
	log.Info("Configuring graceful shutdown...")
	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("app - serve - signal: " + ctx.Err().Error())
	case serveErr = <-httpServer.Notify():
		log.Info(errorsUtils.WrapPathErr(serveErr))
	case serveErr = <-grpcServer.Notify():
		log.Info(errorsUtils.WrapPathErr(serveErr))
	}

	// Graceful shutdown
	shutdownApp(grpcServer, httpServer)
	return errorsUtils.WrapPathErr(serveErr)
}

func shutdownApp(grpcServer *grpcserver.Server, httpServer *httpserver.Server) {
	log.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	grpcServer.Shutdown()
}
