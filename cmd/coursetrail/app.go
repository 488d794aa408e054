package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/coursetrail/coursetrail/internal/catalog"
	"github.com/coursetrail/coursetrail/internal/config"
	"github.com/coursetrail/coursetrail/internal/enrollment"
	"github.com/coursetrail/coursetrail/internal/learning"
	"github.com/coursetrail/coursetrail/internal/notes"
	"github.com/coursetrail/coursetrail/internal/player"
	"github.com/coursetrail/coursetrail/internal/progress"
	"github.com/coursetrail/coursetrail/internal/storage"
	"github.com/coursetrail/coursetrail/internal/storage/local"
	"github.com/coursetrail/coursetrail/internal/storage/sqlite"
	"github.com/coursetrail/coursetrail/internal/wishlist"
)

// App wires the stores together for a CLI invocation. The course catalog
// always lives in SQLite; the stores' key-value state uses the backend the
// config selects.
type App struct {
	Config *config.Config

	Catalog    *catalog.Service
	Enrollment *enrollment.Service
	Progress   *progress.Service
	Player     *player.Service
	Learning   *learning.Service
	Wishlist   *wishlist.Service
	Notes      *notes.Service

	db *sqlite.DB
}

func openApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sqlite.Open(filepath.Join(dataDir, "coursetrail.db"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	var kv storage.KV
	switch cfg.Storage.Backend {
	case "sqlite":
		kv = sqlite.NewKVStore(db)
	default:
		store, err := local.NewStore(dataDir)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("open local store: %w", err)
		}
		kv = store
	}
	slog.Debug("storage ready", "backend", cfg.Storage.Backend, "dir", dataDir)

	app := &App{
		Config:     cfg,
		Catalog:    catalog.NewService(sqlite.NewCatalogStore(db)),
		Enrollment: enrollment.NewService(kv),
		Progress:   progress.NewService(kv),
		Player:     player.NewService(kv, nil),
		Learning:   learning.NewService(kv),
		Wishlist:   wishlist.NewService(kv),
		Notes:      notes.NewService(kv),
		db:         db,
	}
	app.Learning.SetStudyIncrement(cfg.Learning.StudyIncrementMinutes)
	return app, nil
}

// AutosaveInterval returns the configured playback autosave period.
func (a *App) AutosaveInterval() time.Duration {
	return time.Duration(a.Config.Player.AutosaveSeconds) * time.Second
}

func (a *App) Close() error {
	return a.db.Close()
}
