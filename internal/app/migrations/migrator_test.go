package migrations

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMigrationVersion(t *testing.T) {
	tests := map[string]string{
		"001_init.sql":                  "001",
		"/tmp/migrations/010_add_x.sql": "010",
		"002.sql":                       "002.sql",
	}
	for in, want := range tests {
		if got := MigrationVersion(in); got != want {
			t.Errorf("MigrationVersion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMigrationFilesOrdered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "003_dir.sql"), 0o700); err != nil {
		t.Fatal(err)
	}

	files, err := MigrationFiles(dir)
	if err != nil {
		t.Fatalf("MigrationFiles: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "001_a.sql" || filepath.Base(files[1]) != "002_b.sql" {
		t.Errorf("MigrationFiles = %v", files)
	}

	if _, err := MigrationFiles(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestShippedMigrationsPresent(t *testing.T) {
	files, err := MigrationFiles(filepath.Join("..", "..", "..", "migrations"))
	if err != nil {
		t.Fatalf("MigrationFiles: %v", err)
	}
	if len(files) == 0 || MigrationVersion(files[0]) != "001" {
		t.Errorf("unexpected migrations %v", files)
	}
}
