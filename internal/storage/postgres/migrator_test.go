package postgres

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadMigrationsFromFS_Success(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/migrations/0002_more.up.sql":   {Data: []byte("CREATE TABLE test_b (id INT);")},
		"sql/migrations/0002_more.down.sql": {Data: []byte("DROP TABLE IF EXISTS test_b;")},
		"sql/migrations/0001_init.up.sql":   {Data: []byte("CREATE TABLE test_a (id INT);")},
		"sql/migrations/0001_init.down.sql": {Data: []byte("DROP TABLE IF EXISTS test_a;")},
	}

	migrations, err := loadMigrationsFromFS(fsys)
	if err != nil {
		t.Fatalf("loadMigrationsFromFS failed: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[0].Name != "init" {
		t.Fatalf("unexpected first migration: %+v", migrations[0])
	}
	if migrations[1].Version != 2 || migrations[1].DownSQL != "DROP TABLE IF EXISTS test_b;" {
		t.Fatalf("unexpected second migration: %+v", migrations[1])
	}
}

func TestLoadMigrationsFromFS_Embedded(t *testing.T) {
	t.Parallel()

	migrations, err := loadMigrationsFromFS(embeddedMigrations)
	if err != nil {
		t.Fatalf("embedded migrations must load: %v", err)
	}
	if len(migrations) != 2 || !strings.Contains(migrations[0].UpSQL, "CREATE TABLE IF NOT EXISTS orders") {
		t.Fatalf("unexpected embedded migrations: %+v", migrations)
	}
}

func TestLoadMigrationsFromFS_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{
			name:    "missing down",
			fsys:    fstest.MapFS{"sql/migrations/0001_init.up.sql": {Data: []byte("SELECT 1;")}},
			wantErr: "both up and down",
		},
		{
			name:    "invalid filename",
			fsys:    fstest.MapFS{"sql/migrations/not_a_migration.sql": {Data: []byte("SELECT 1;")}},
			wantErr: "invalid migration file name",
		},
		{
			name: "empty body",
			fsys: fstest.MapFS{
				"sql/migrations/0001_init.up.sql":   {Data: []byte("   \n")},
				"sql/migrations/0001_init.down.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: "empty",
		},
		{
			name: "name mismatch",
			fsys: fstest.MapFS{
				"sql/migrations/0001_init.up.sql":    {Data: []byte("SELECT 1;")},
				"sql/migrations/0001_other.down.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: "name mismatch",
		},
		{
			name:    "no files",
			fsys:    fstest.MapFS{},
			wantErr: "no migration files",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadMigrationsFromFS(tc.fsys)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPendingMigrations(t *testing.T) {
	t.Parallel()

	all := []migration{{Version: 1}, {Version: 2}, {Version: 3}}
	applied := map[int64]bool{1: true, 2: true}

	up := pendingMigrations(all, applied, migrationUp, 0)
	if len(up) != 1 || up[0].Version != 3 {
		t.Fatalf("unexpected up selection: %+v", up)
	}

	down := pendingMigrations(all, applied, migrationDown, 1)
	if len(down) != 1 || down[0].Version != 2 {
		t.Fatalf("down must start from the newest applied version: %+v", down)
	}

	downAll := pendingMigrations(all, applied, migrationDown, 10)
	if len(downAll) != 2 || downAll[0].Version != 2 || downAll[1].Version != 1 {
		t.Fatalf("unexpected down selection: %+v", downAll)
	}
}
