package storage

import (
	"context"
	"fmt"

	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/config"
)

// New opens the backend selected by cfg.StorageBackend.
func New(ctx context.Context, cfg *config.Config, logger internal.Logger) (Store, error) {
	switch cfg.StorageBackend {
	case "file":
		fs, err := NewFileStorage(cfg.RecordsFile, cfg.ActivitiesFile, cfg.ProfilesFile, logger)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case "postgres":
		pg, err := NewPostgresStorage(ctx, cfg.PostgresDSN, logger)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.StorageBackend)
	}
}
