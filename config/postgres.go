package config

import (
	"database/sql"
	"fmt"
	"time"

	"pictocat/models/postgres"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectGORM returns a GORM DB instance connected to PostgreSQL
func ConnectGORM(settings Settings, log *zap.Logger) (*gorm.DB, error) {
	// NOTE: See https://github.com/go-gorm/gorm/issues/5409
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		settings.PostgresUser, settings.PostgresPassword,
		settings.PostgresHost, settings.PostgresPort, settings.PostgresDatabase)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	gormConfig := &gorm.Config{}
	if settings.VerbosePostgres {
		gormConfig.Logger = logger.New(
			zap.NewStdLog(log.Named("gorm")),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Info,
				IgnoreRecordNotFoundError: true,
			},
		)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening postgres with gorm: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("connected to PostgreSQL", zap.String("host", settings.PostgresHost), zap.String("database", settings.PostgresDatabase))
	return db, nil
}

// MigrateDatabase migrates the GORM models to the database
func MigrateDatabase(db *gorm.DB, log *zap.Logger) error {
	// NOTE: requires postgres driver v1.4.0, see https://github.com/pilinux/gorest/issues/167
	if err := db.AutoMigrate(postgres.All()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	log.Info("database migrated")
	return nil
}
