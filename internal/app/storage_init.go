package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ticketorder/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/ticketorder/internal/health"
	"github.com/vladislavdragonenkov/ticketorder/internal/storage/memory"
	"github.com/vladislavdragonenkov/ticketorder/internal/storage/postgres"
)

// runtimeDependencies — хранилище выбранного драйвера и связанные с ним ресурсы.
type runtimeDependencies struct {
	repo           domain.OrderRepository
	storageChecker healthcheck.Checker
	closeFn        func() error
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (runtimeDependencies, error) {
	switch cfg.StorageDriver {
	case StorageDriverMemory:
		logger.Info("используем in-memory хранилище заказов")
		return runtimeDependencies{
			repo: memory.NewOrderRepository(),
			storageChecker: healthcheck.NewFuncChecker("storage", func(context.Context) error {
				return nil
			}),
			closeFn: func() error { return nil },
		}, nil
	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return runtimeDependencies{}, fmt.Errorf("postgres storage requires ORDER_POSTGRES_DSN")
		}
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return runtimeDependencies{}, fmt.Errorf("open postgres store: %w", err)
		}
		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return runtimeDependencies{}, fmt.Errorf("apply postgres migrations: %w", err)
			}
		}
		logger.WithField("auto_migrate", cfg.PostgresAutoMigrate).Info("используем postgres хранилище заказов")
		return runtimeDependencies{
			repo:           postgres.NewOrderRepository(store),
			storageChecker: healthcheck.NewFuncChecker("storage", store.Ping),
			closeFn:        store.Close,
		}, nil
	default:
		return runtimeDependencies{}, fmt.Errorf("unsupported storage driver: %q", cfg.StorageDriver)
	}
}
