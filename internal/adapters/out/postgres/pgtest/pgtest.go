// Package pgtest starts a disposable PostgreSQL container for integration suites.
package pgtest

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a running container and a GORM handle connected to it.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and opens GORM with TranslateError, matching the
// production configuration.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
