package db

import (
	"context"
	"fmt"

	"poll_scheduling_system/configs"

	"github.com/go-pg/migrations/v8"
	"github.com/go-pg/pg/v10"
	"go.uber.org/zap"
)

type queryLogger struct {
	logger *zap.SugaredLogger
}

func (h queryLogger) BeforeQuery(ctx context.Context, event *pg.QueryEvent) (context.Context, error) {
	if query, err := event.FormattedQuery(); err == nil {
		h.logger.Debug(string(query))
	}
	return ctx, nil
}

func (h queryLogger) AfterQuery(ctx context.Context, event *pg.QueryEvent) error {
	return nil
}

// StartDB connects to Postgres and brings the schema up to date. Polls are the
// scheduler's only durable state, so a failed migration is fatal to startup.
func StartDB(config configs.DB, logger *zap.SugaredLogger) (*pg.DB, error) {
	options, err := pg.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse db url: %w", err)
	}

	database := pg.Connect(options)
	database.AddQueryHook(queryLogger{logger: logger})

	if err := migrate(database, logger); err != nil {
		return nil, err
	}

	return database, nil
}

func migrate(database *pg.DB, logger *zap.SugaredLogger) error {
	collection := migrations.NewCollection()

	if err := collection.DiscoverSQLMigrations("migrations"); err != nil {
		return fmt.Errorf("failed to discover migrations: %w", err)
	}

	if _, _, err := collection.Run(database, "init"); err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	oldVersion, newVersion, err := collection.Run(database, "up")
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if newVersion != oldVersion {
		logger.Infof("migrated from version %d to %d", oldVersion, newVersion)
	} else {
		logger.Infof("schema version is %d", oldVersion)
	}

	return nil
}
