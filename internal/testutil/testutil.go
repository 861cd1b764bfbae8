package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/statikk/ddmirror/internal/api"
	"github.com/statikk/ddmirror/internal/config"
	"github.com/statikk/ddmirror/internal/datadragon"
	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/repository"
	repoPostgres "github.com/statikk/ddmirror/internal/repository/postgres"
	"github.com/statikk/ddmirror/internal/service"
	"github.com/statikk/ddmirror/internal/task"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_ddmirror"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	err = db.AutoMigrate(
		&domain.GameVersion{},
		&domain.Champion{},
		&domain.Item{},
		&domain.RunePath{},
		&domain.Rune{},
		&domain.SummonerSpell{},
	)
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"runes",
		"rune_paths",
		"summoner_spells",
		"items",
		"champions",
		"game_versions",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// TestConfig returns a configuration pointed at the given fake upstream. The
// version cache is disabled so tests that publish a new version see it on the
// next resolve.
func TestConfig(upstreamURL string) *config.Config {
	return &config.Config{
		Port:              "0",
		Environment:       "test",
		DataDragonBaseURL: upstreamURL,
		DataDragonLang:    "en_US",
		UpstreamTimeout:   5 * time.Second,
		VersionCacheTTL:   0,
		SyncIntervalHours: 0,
	}
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	DB       *TestDB
	Dragon   *FakeDragon
	Repos    *repository.Repositories
	Services *service.Services
	Runner   *task.GoRunner
	Config   *config.Config
}

// NewTestServer creates a complete test server with all dependencies. The
// fake upstream starts pre-seeded with the default fixture set.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	fakeDragon := NewFakeDragon(t)
	fakeDragon.SeedDefaults()
	cfg := TestConfig(fakeDragon.BaseURL())

	repos := repoPostgres.NewRepositories(testDB.DB)
	dragon := datadragon.NewClient(cfg)
	runner := task.NewGoRunner()

	services := service.NewServices(repos, dragon, runner)
	router := api.NewRouter(services)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		DB:       testDB,
		Dragon:   fakeDragon,
		Repos:    repos,
		Services: services,
		Runner:   runner,
		Config:   cfg,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api/v1%s", ts.Server.URL, path)
}
