package app

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	healthcheck "github.com/vladislavdragonenkov/ticketorder/internal/health"
)

func quietLogger() *log.Entry {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("test", "app")
}

func TestInitRuntimeDependencies_Memory(t *testing.T) {
	t.Parallel()

	deps, err := initRuntimeDependencies(context.Background(), Config{StorageDriver: StorageDriverMemory}, quietLogger())
	require.NoError(t, err)

	require.NotNil(t, deps.repo)
	require.NotNil(t, deps.storageChecker)
	assert.Equal(t, healthcheck.StatusHealthy, deps.storageChecker.Check(context.Background()).Status)
	assert.NoError(t, deps.closeFn())
}

func TestInitRuntimeDependencies_PostgresRequiresDSN(t *testing.T) {
	t.Parallel()

	_, err := initRuntimeDependencies(context.Background(), Config{StorageDriver: StorageDriverPostgres}, quietLogger())
	require.Error(t, err)
}

func TestInitRuntimeDependencies_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := initRuntimeDependencies(context.Background(), Config{StorageDriver: "sqlite"}, quietLogger())
	require.ErrorContains(t, err, "unsupported storage driver")
}

func TestInitRuntimeDependencies_PostgresSuccess(t *testing.T) {
	dsn := strings.TrimSpace(os.Getenv("ORDER_POSTGRES_TEST_DSN"))
	if dsn == "" {
		t.Skip("postgres dsn is not available")
	}

	cfg := DefaultConfig()
	cfg.StorageDriver = StorageDriverPostgres
	cfg.PostgresDSN = dsn

	deps, err := initRuntimeDependencies(context.Background(), cfg, quietLogger())
	if err != nil {
		t.Skipf("postgres is not available for app integration test: %v", err)
	}
	defer func() { _ = deps.closeFn() }()

	check := deps.storageChecker.Check(context.Background())
	assert.Equal(t, healthcheck.StatusHealthy, check.Status, check.Message)
}
