//go:build integration

package locale_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/hlynes/personagen/locale"
	"github.com/hlynes/personagen/persona"

	_ "github.com/lib/pq"
)

// setupTestDB creates a PostgreSQL testcontainer and runs migrations
func setupTestDB(t *testing.T) (*sql.DB, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "password",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	postgres, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	host, err := postgres.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgres.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	connStr := fmt.Sprintf("postgres://postgres:password@%s:%s/testdb?sslmode=disable", host, port.Port())

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	// Wait for database to be ready
	for i := 0; i < 30; i++ {
		if err := db.Ping(); err == nil {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	migrationSQL, err := os.ReadFile(filepath.Join("..", "migrations", "000001_initial_schema.up.sql"))
	if err != nil {
		t.Fatalf("Failed to read migration file: %v", err)
	}
	if _, err := db.Exec(string(migrationSQL)); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cleanup := func() {
		db.Close()
		postgres.Terminate(ctx)
	}

	return db, cleanup
}

func TestPostgresStoreLocales(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := locale.NewPostgresStore(db)
	if err := store.Ping(); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	infos, err := store.Locales()
	if err != nil {
		t.Fatalf("Locales failed: %v", err)
	}
	want := []locale.Info{
		{Code: "de_DE", Name: "German (Germany)"},
		{Code: "en_US", Name: "English (United States)"},
	}
	if !reflect.DeepEqual(infos, want) {
		t.Errorf("Expected %v, got %v", want, infos)
	}
}

func TestPostgresStoreBundle(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := locale.NewPostgresStore(db)

	b, err := store.Bundle("en_US")
	if err != nil {
		t.Fatalf("Bundle failed: %v", err)
	}
	if len(b.FirstNames) != 40 || len(b.LastNames) != 24 || len(b.Cities) != 12 {
		t.Errorf("Unexpected list sizes: %d first names, %d last names, %d cities",
			len(b.FirstNames), len(b.LastNames), len(b.Cities))
	}
	first := b.FirstNames[0]
	if first.ID != 1 || first.Text != "James" || first.Gender != "M" || first.Frequency != 95 {
		t.Errorf("Unexpected first entry: %+v", first)
	}
	seattle := b.Cities[10]
	if seattle.Name != "Seattle" || seattle.Region != "WA" || seattle.PostalPattern != "#####" {
		t.Errorf("Unexpected city: %+v", seattle)
	}

	if _, err := store.Bundle("xx_XX"); !errors.Is(err, locale.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown locale, got %v", err)
	}
}

// TestPostgresMatchesBuiltin verifies that a Postgres-backed process
// generates exactly what a builtin-backed one does, list for list and
// record for record.
func TestPostgresMatchesBuiltin(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	pg := locale.NewPostgresStore(db)
	mem, err := locale.NewMemoryStore(locale.Builtin()...)
	if err != nil {
		t.Fatalf("Failed to build memory store: %v", err)
	}

	for _, code := range []string{"en_US", "de_DE"} {
		fromPG, err := pg.Bundle(code)
		if err != nil {
			t.Fatalf("Postgres bundle %s failed: %v", code, err)
		}
		fromMem, err := mem.Bundle(code)
		if err != nil {
			t.Fatalf("Memory bundle %s failed: %v", code, err)
		}
		if !reflect.DeepEqual(fromPG, fromMem) {
			t.Errorf("Bundle %s differs between stores", code)
		}
	}

	genPG := persona.New(pg)
	genMem := persona.New(mem)
	for _, code := range []string{"en_US", "de_DE"} {
		fromPG, err := genPG.Series(code, 12345, 0, 100)
		if err != nil {
			t.Fatalf("Postgres generation %s failed: %v", code, err)
		}
		fromMem, err := genMem.Series(code, 12345, 0, 100)
		if err != nil {
			t.Fatalf("Memory generation %s failed: %v", code, err)
		}
		if !reflect.DeepEqual(fromPG, fromMem) {
			t.Errorf("Generated records for %s differ between stores", code)
		}
	}
}
