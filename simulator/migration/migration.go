package migration

import (
	"context"
	"embed"
	"fmt"

	"github.com/Gthulhu/schedsim/config"
	"github.com/Gthulhu/schedsim/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed mongo/*.json
var mongoMigrations embed.FS

// RunMongoMigration applies every pending index migration. It is a no-op when
// MongoDB is disabled.
func RunMongoMigration(cfg config.MongoDBConfig) error {
	if !cfg.Enable {
		return nil
	}
	ctx := context.Background()

	src, err := iofs.New(mongoMigrations, "mongo")
	if err != nil {
		return errors.Wrap(err, "load embedded migrations")
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, migrationURL(cfg))
	if err != nil {
		return errors.Wrap(err, "init mongo migration")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Logger(ctx).Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("close migration")
		}
	}()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Logger(ctx).Debug().Msg("mongo migration: no change")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "run mongo migration")
	}
	version, _, _ := m.Version()
	logger.Logger(ctx).Info().Uint("version", version).Msg("mongo migration applied")
	return nil
}

func migrationURL(cfg config.MongoDBConfig) string {
	if cfg.User == "" {
		return fmt.Sprintf("%s/%s", cfg.URI(), cfg.Database)
	}
	return fmt.Sprintf("%s/%s?authSource=admin", cfg.URI(), cfg.Database)
}
