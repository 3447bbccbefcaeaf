// Standalone outbox worker for deployments that publish events from a
// separate process instead of the API's in-process worker.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/jwalitptl/bloodbank-api/internal/config"
	"github.com/jwalitptl/bloodbank-api/internal/repository/postgres"
	"github.com/jwalitptl/bloodbank-api/pkg/logger"
	"github.com/jwalitptl/bloodbank-api/pkg/messaging/redis"
	"github.com/jwalitptl/bloodbank-api/pkg/metrics"
	"github.com/jwalitptl/bloodbank-api/pkg/worker"
)

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}
	if cfg.Database.LegacySchema {
		log.Fatal(nil, "outbox worker requires the native schema")
	}
	if cfg.Redis.URL == "" {
		log.Fatal(nil, "outbox worker requires a redis url")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	broker, err := redis.NewRedisBroker(redis.Config{
		URL:          cfg.Redis.URL,
		MaxRetries:   3,
		RetryBackoff: 100 * time.Millisecond,
		PoolSize:     10,
		MinIdleConns: 2,
	}, log)
	if err != nil {
		log.Fatal(err, "failed to connect to redis")
	}
	defer broker.Close()

	processor := worker.NewOutboxProcessor(
		postgres.NewOutboxRepository(db),
		broker,
		worker.OutboxProcessorConfig{
			BatchSize:     cfg.Outbox.BatchSize,
			PollInterval:  time.Duration(cfg.Outbox.PollSeconds) * time.Second,
			RetryAttempts: cfg.Outbox.RetryAttempts,
			RetryDelay:    time.Second,
		},
		log,
		metrics.NewMetrics("bloodbank_worker"),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	processor.Start(ctx)
}
