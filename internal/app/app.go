// Package app собирает сервис заказов и управляет жизненным циклом его серверов.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/vladislavdragonenkov/ticketorder/internal/client/station"
	healthcheck "github.com/vladislavdragonenkov/ticketorder/internal/health"
	"github.com/vladislavdragonenkov/ticketorder/internal/metrics"
	"github.com/vladislavdragonenkov/ticketorder/internal/service/order"
	httptransport "github.com/vladislavdragonenkov/ticketorder/internal/transport/http"
	"github.com/vladislavdragonenkov/ticketorder/internal/version"
)

// healthSyncInterval — период переноса HTTP health-статуса в gRPC health.
const healthSyncInterval = 5 * time.Second

// Run поднимает HTTP API, сервер метрик и gRPC health, пока не отменён ctx.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := deps.closeFn(); err != nil {
			logger.WithError(err).Warn("failed to close storage")
		}
	}()

	publisher, producer := initEventPublisher(cfg, logger)
	defer closeKafka(producer, logger)

	orderService := order.NewService(
		deps.repo,
		station.NewClient(cfg.StationServiceURL, cfg.StationTimeout, logger.WithField("layer", "station-client")),
		order.WithEventPublisher(publisher),
		order.WithMetrics(metrics.NewOrderMetrics()),
		order.WithSecurityWindow(cfg.SecurityWindow),
		order.WithLogger(logger.WithField("layer", "service")),
	)

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	healthHandler.RegisterChecker("storage", deps.storageChecker)

	apiLis, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listen http api %s: %w", cfg.HTTPAddr, err)
	}
	metricsLis, err := net.Listen("tcp", cfg.MetricsAddr)
	if err != nil {
		_ = apiLis.Close()
		return fmt.Errorf("listen metrics %s: %w", cfg.MetricsAddr, err)
	}
	grpcLis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		_ = apiLis.Close()
		_ = metricsLis.Close()
		return fmt.Errorf("listen grpc %s: %w", cfg.GRPCAddr, err)
	}

	apiSrv := &http.Server{
		Handler:           httptransport.NewRouter(orderService, logger.WithField("layer", "http")),
		ReadHeaderTimeout: 5 * time.Second,
	}
	metricsSrv := &http.Server{
		Handler:           newOpsHandler(healthHandler),
		ReadHeaderTimeout: 5 * time.Second,
	}
	grpcServer, healthServer := newGRPCHealthServer(logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("HTTP API слушает %s", apiLis.Addr())
		return serveHTTP(apiSrv, apiLis)
	})
	g.Go(func() error {
		logger.Infof("метрики доступны по адресу %s/metrics", metricsLis.Addr())
		return serveHTTP(metricsSrv, metricsLis)
	})
	g.Go(func() error {
		logger.Infof("gRPC health сервер слушает %s", grpcLis.Addr())
		return grpcServer.Serve(grpcLis)
	})
	g.Go(func() error {
		syncGRPCHealth(gctx, healthHandler, healthServer, healthSyncInterval)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("получен сигнал остановки, останавливаем серверы")
		healthServer.Shutdown()
		stopGRPC(grpcServer, cfg.ShutdownTimeout, logger)
		shutdownHTTP(apiSrv, cfg.ShutdownTimeout, logger)
		shutdownHTTP(metricsSrv, cfg.ShutdownTimeout, logger)
		return nil
	})

	err = g.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// newOpsHandler обслуживает /metrics и health probe-ы.
func newOpsHandler(healthHandler *healthcheck.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)
	return mux
}

func newGRPCHealthServer(logger *log.Entry) (*grpc.Server, *health.Server) {
	grpcMetrics := promgrpc.NewServerMetrics()
	if err := prometheus.Register(grpcMetrics); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*promgrpc.ServerMetrics); ok {
				grpcMetrics = existing
			}
		} else {
			logger.WithError(err).Warn("failed to register grpc metrics")
		}
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcMetrics.UnaryServerInterceptor()))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)
	grpcMetrics.InitializeMetrics(grpcServer)

	return grpcServer, healthServer
}

// syncGRPCHealth переносит сводный статус health handler-а в gRPC health.
func syncGRPCHealth(ctx context.Context, handler *healthcheck.Handler, server *health.Server, interval time.Duration) {
	apply := func() {
		status := healthpb.HealthCheckResponse_SERVING
		if handler.Evaluate(ctx).Status == healthcheck.StatusUnhealthy {
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
		server.SetServingStatus("", status)
	}

	apply()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			apply()
		}
	}
}

func serveHTTP(srv *http.Server, lis net.Listener) error {
	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func stopGRPC(server *grpc.Server, timeout time.Duration, logger *log.Entry) {
	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(timeout):
		logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
		server.Stop()
	}
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, timeout time.Duration, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}
