package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	healthcheck "github.com/vladislavdragonenkov/ticketorder/internal/health"
	"github.com/vladislavdragonenkov/ticketorder/internal/messaging/kafka"
)

func localConfig() Config {
	cfg := DefaultConfig()
	cfg.HTTPAddr = "127.0.0.1:0"
	cfg.GRPCAddr = "127.0.0.1:0"
	cfg.MetricsAddr = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second
	return cfg
}

func TestRun_MemoryGracefulShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(150 * time.Millisecond)
		cancel()
	}()

	err := Run(ctx, localConfig())

	require.True(t, errors.Is(err, context.Canceled), "expected context.Canceled, got %v", err)
}

func TestRun_InvalidStorageDriver(t *testing.T) {
	cfg := localConfig()
	cfg.StorageDriver = "invalid-driver"

	err := Run(context.Background(), cfg)

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported storage driver"))
}

func TestRun_AddressInUse(t *testing.T) {
	occupied := httptest.NewServer(http.NotFoundHandler())
	defer occupied.Close()

	cfg := localConfig()
	cfg.MetricsAddr = strings.TrimPrefix(occupied.URL, "http://")

	err := Run(context.Background(), cfg)

	require.ErrorContains(t, err, "listen metrics")
}

func TestOpsHandler_Endpoints(t *testing.T) {
	healthHandler := healthcheck.NewHandler("test")
	server := httptest.NewServer(newOpsHandler(healthHandler))
	defer server.Close()

	for path, wantCode := range map[string]int{
		"/metrics": http.StatusOK,
		"/healthz": http.StatusOK,
		"/livez":   http.StatusOK,
		"/readyz":  http.StatusOK,
	} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err, path)
		_ = resp.Body.Close()
		assert.Equal(t, wantCode, resp.StatusCode, path)
	}
}

func TestSyncGRPCHealth(t *testing.T) {
	healthHandler := healthcheck.NewHandler("test")
	healthHandler.RegisterChecker("storage", healthcheck.NewFuncChecker("storage", func(context.Context) error {
		return errors.New("down")
	}))
	server := health.NewServer()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		syncGRPCHealth(ctx, healthHandler, server, time.Hour)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := server.Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestInitEventPublisher(t *testing.T) {
	publisher, producer := initEventPublisher(Config{}, quietLogger())
	assert.IsType(t, kafka.NoopPublisher{}, publisher)
	assert.Nil(t, producer)

	closeKafka(nil, quietLogger())
}

func TestShutdownHTTP_NilServer(t *testing.T) {
	assert.NotPanics(t, func() { shutdownHTTP(nil, time.Second, quietLogger()) })
}
