package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotes-service/internal/adapters/repository/dynamo"
	"github.com/jsamuelsen/quotes-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quotes-service/internal/adapters/repository/sqlite"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// openStore builds the quote store named by cfg.Driver.
func openStore(ctx context.Context, cfg *config.StoreConfig, logger *slog.Logger) (ports.QuoteStore, error) {
	switch cfg.Driver {
	case config.DriverDynamoDB:
		return openDynamo(ctx, &cfg.DynamoDB, logger)

	case config.DriverSQLite:
		repo, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("using sqlite store", slog.String("path", cfg.SQLite.Path))

		return repo, nil

	case config.DriverMemory:
		logger.Warn("using in-memory store; quotes are lost on restart")
		return memory.New(), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func openDynamo(ctx context.Context, cfg *config.DynamoDBConfig, logger *slog.Logger) (ports.QuoteStore, error) {
	client, err := dynamo.NewClient(ctx, dynamo.ClientConfig{
		Region:          cfg.Region,
		Endpoint:        cfg.Endpoint,
		AccessKeyID:     cfg.AccessKeyID,
		SecretAccessKey: cfg.SecretAccessKey,
	})
	if err != nil {
		return nil, err
	}

	repo := dynamo.New(client, dynamo.Options{
		TableName: cfg.Table,
		IndexName: cfg.Index,
		Logger:    logger,
	})

	if cfg.CreateTable {
		if err := repo.EnsureTable(ctx); err != nil {
			return nil, fmt.Errorf("ensuring table %s: %w", cfg.Table, err)
		}
	}

	logger.Info("using dynamodb store",
		slog.String("table", cfg.Table),
		slog.String("region", cfg.Region),
		slog.String("endpoint", cfg.Endpoint),
	)

	return repo, nil
}
