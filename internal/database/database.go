package database

import (
	"context"
	"fmt"
	"time"

	"datawise-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.applyDefaults()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func (o *Options) applyDefaults() {
	if o.LogLevel == 0 {
		o.LogLevel = logger.Error
	}
	if o.MaxOpenConns == 0 {
		o.MaxOpenConns = 20
	}
	if o.MaxIdleConns == 0 {
		o.MaxIdleConns = 10
	}
	if o.ConnMaxLifetime == 0 {
		o.ConnMaxLifetime = 30 * time.Minute
	}
	if o.ConnMaxIdleTime == 0 {
		o.ConnMaxIdleTime = 10 * time.Minute
	}
}

// Migrate creates tenants, users and one items table per resource kind.
// Tenants go first so the foreign keys of the other tables resolve.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Tenant{}, &models.User{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	for _, kind := range models.AllResourceKinds() {
		if err := db.Table(kind.TableName()).AutoMigrate(&models.Item{}); err != nil {
			return fmt.Errorf("auto-migrate %s: %w", kind.TableName(), err)
		}
		if err := createTenantIndex(db, kind); err != nil {
			return err
		}
	}
	return nil
}

// createTenantIndex indexes tenant_id on the kind's table. Index names are
// unique per schema, so each table gets its own name.
func createTenantIndex(db *gorm.DB, kind models.ResourceKind) error {
	err := db.Exec("CREATE INDEX IF NOT EXISTS ? ON ? (tenant_id)",
		clause.Table{Name: kind.TenantIndexName()},
		clause.Table{Name: kind.TableName()},
	).Error
	if err != nil {
		return fmt.Errorf("create index %s: %w", kind.TenantIndexName(), err)
	}
	return nil
}

// Ping checks that the database answers within the context deadline
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}
