// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/crypto-admin-api/internal/config"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB wraps the GORM handle together with the Postgres error classifier used
// by every repository.
type DB struct {
	*gorm.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a GORM connection over the pgx driver, applies the
// pool limits from cfg and pings the database.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	gormDB, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}

	// setup connections
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db := newDB(gormDB, log)

	// ping database
	if err = db.Ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}

func newDB(gormDB *gorm.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 gormDB,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPingingDatabase, err)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrPingingDatabase, err)
	}

	return nil
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	return migrations.Migrate(sqlDB)
}

// Close releases the connection pool.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// wrapQueryError logs err with its retry classification and wraps it with
// ErrExecutingQuery.
func (db *DB) wrapQueryError(ctx context.Context, funcName string, err error) error {
	log := logger.FromContext(ctx)
	log.Err(err).
		Str("func", funcName).
		Str("pg_code", postgresError(err)).
		Str("classification", db.errorClassificator.Classify(err).String()).
		Msg("database query failed")

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
