package postgres

import (
	"context"
	"testing"
	"time"
)

func TestMigrator_PostgresLifecycle(t *testing.T) {
	store := openRawPostgresStoreForIntegrationTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := store.MigrateDown(ctx, 100); err != nil {
		t.Fatalf("migrate down reset: %v", err)
	}

	steps := []struct {
		name        string
		run         func() error
		wantVersion int64
		wantCount   int
	}{
		{name: "up all", run: func() error { return store.MigrateUp(ctx, 0) }, wantVersion: 2, wantCount: 2},
		{name: "idempotent up", run: func() error { return store.EnsureSchema(ctx) }, wantVersion: 2, wantCount: 2},
		{name: "down one", run: func() error { return store.MigrateDown(ctx, 1) }, wantVersion: 1, wantCount: 1},
		{name: "down default step", run: func() error { return store.MigrateDown(ctx, 0) }, wantVersion: 0, wantCount: 0},
		{name: "down on empty is no-op", run: func() error { return store.MigrateDown(ctx, 1) }, wantVersion: 0, wantCount: 0},
		{name: "up one step", run: func() error { return store.MigrateUp(ctx, 1) }, wantVersion: 1, wantCount: 1},
		{name: "up rest", run: func() error { return store.MigrateUp(ctx, 0) }, wantVersion: 2, wantCount: 2},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		version, count, err := store.MigrationStatus(ctx)
		if err != nil {
			t.Fatalf("%s: migration status: %v", step.name, err)
		}
		if version != step.wantVersion || count != step.wantCount {
			t.Fatalf("%s: unexpected status version=%d count=%d", step.name, version, count)
		}
	}
}

func TestMigrator_GuardsAndUnsupportedDirection(t *testing.T) {
	var nilStore *Store
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := nilStore.MigrateUp(ctx, 0); err == nil {
		t.Fatal("expected error for nil store MigrateUp")
	}
	if err := nilStore.MigrateDown(ctx, 1); err == nil {
		t.Fatal("expected error for nil store MigrateDown")
	}
	if _, _, err := nilStore.MigrationStatus(ctx); err == nil {
		t.Fatal("expected error for nil store MigrationStatus")
	}

	store := &Store{db: nil}
	if err := store.migrate(ctx, migrationDirection("sideways"), 0); err == nil {
		t.Fatal("expected error for store without db")
	}
}
