package main

import (
	"context"
	"fmt"

	"pictocat/config"
	"pictocat/services/missions"
	"pictocat/services/profile"
	"pictocat/services/settings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// base holds what every subcommand needs before doing its own work.
type base struct {
	settings config.Settings
	log      *zap.Logger
	db       *gorm.DB
}

func setup() (*base, error) {
	cfg := config.Load()
	log, err := config.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	db, err := config.ConnectGORM(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
	}
	return &base{settings: cfg, log: log, db: db}, nil
}

func (b *base) close() {
	if sqlDB, err := b.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = b.log.Sync()
}

// migrate brings the schema and stored documents up to date.
func (b *base) migrate(ctx context.Context) error {
	if err := config.MigrateDatabase(b.db, b.log); err != nil {
		return err
	}
	if err := config.SeedDefaults(b.db, b.log); err != nil {
		return err
	}

	settingsService := settings.NewService(b.db, nil, b.log)
	missionService := missions.NewService(b.db, settingsService, b.log)
	profiles := profile.NewService(b.db, settingsService, missionService, b.log, b.settings.AdminSubject)

	repaired, err := profiles.RepairAll(ctx)
	if err != nil {
		return fmt.Errorf("repairing profiles: %w", err)
	}
	migrated, err := profiles.MigrateLegacyFriends(ctx)
	if err != nil {
		return fmt.Errorf("migrating legacy friends: %w", err)
	}
	b.log.Info("stored profiles up to date", zap.Int("repaired", repaired), zap.Int("legacyFriendships", migrated))
	return nil
}
