package database

import (
	"context"
	"fmt"
	"time"

	"github.com/princeprakhar/product-reviews/internal/config"
	"github.com/princeprakhar/product-reviews/internal/models"
	applog "github.com/princeprakhar/product-reviews/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the configured store and migrates the schema.
func Init(cfg *config.Config) (*gorm.DB, error) {
	level := logger.Info
	if cfg.IsProduction() {
		level = logger.Warn
	}

	db, err := Open(cfg.DatabaseDriver, cfg.DatabaseURL, level)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		_ = Close(db)
		return nil, err
	}

	return db, nil
}

// Open connects to the store. Driver errors are translated so callers can
// match gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(driver, dsn string, level logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(applog.Get(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// PRAGMA foreign_keys is per connection, and an in-memory database
		// only exists on the connection that created it.
		sqlDB.SetMaxOpenConns(1)

		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Product{},
		&models.Buyer{},
		&models.Review{},
		&models.BuyerProduct{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
