// Package wire provides dependency injection for the remind application.
// It creates singleton services with lazy, at-most-once initialization: the
// database handle is opened and migrated here, before any concurrent access
// to the store is possible.
package wire

import (
	"context"
	"log"
	"sync"

	"github.com/jmhodges/clock"

	"github.com/example/remind/internal/adapters/sqlite"
	"github.com/example/remind/internal/app"
	"github.com/example/remind/internal/config"
	"github.com/example/remind/internal/db"
	"github.com/example/remind/internal/ports/primary"
)

var (
	cfg   *config.Config
	store primary.ReminderStore
	once  sync.Once
)

// ReminderStore returns the singleton ReminderStore, loaded and ready.
func ReminderStore() primary.ReminderStore {
	once.Do(initServices)
	return store
}

// Config returns the loaded application configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// initServices initializes the full dependency chain. Storage being
// unavailable or a failed migration is fatal: the application cannot run
// without its database.
func initServices() {
	loaded, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg = loaded

	path := cfg.DBPath
	if path == "" {
		path, err = db.DefaultPath()
		if err != nil {
			log.Fatalf("failed to resolve database path: %v", err)
		}
	}

	database, err := db.Open(path)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.RunMigrations(database); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	repo := sqlite.NewReminderRepository(database, clock.New())
	reminderStore := app.NewReminderStore(repo)
	if err := reminderStore.Load(context.Background()); err != nil {
		log.Fatalf("failed to load reminders: %v", err)
	}
	store = reminderStore
}
