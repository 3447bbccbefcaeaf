package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/bloodbank-api/internal/config"
	"github.com/jwalitptl/bloodbank-api/internal/email"
	authHandler "github.com/jwalitptl/bloodbank-api/internal/handler/auth"
	bankHandler "github.com/jwalitptl/bloodbank-api/internal/handler/bank"
	bloodtestHandler "github.com/jwalitptl/bloodbank-api/internal/handler/bloodtest"
	donationHandler "github.com/jwalitptl/bloodbank-api/internal/handler/donation"
	donorHandler "github.com/jwalitptl/bloodbank-api/internal/handler/donor"
	"github.com/jwalitptl/bloodbank-api/internal/handler/health"
	patientHandler "github.com/jwalitptl/bloodbank-api/internal/handler/patient"
	requestHandler "github.com/jwalitptl/bloodbank-api/internal/handler/request"
	staffHandler "github.com/jwalitptl/bloodbank-api/internal/handler/staff"
	"github.com/jwalitptl/bloodbank-api/internal/middleware"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	"github.com/jwalitptl/bloodbank-api/internal/repository/postgres"
	"github.com/jwalitptl/bloodbank-api/internal/router"
	"github.com/jwalitptl/bloodbank-api/internal/schema"
	authService "github.com/jwalitptl/bloodbank-api/internal/service/auth"
	bankService "github.com/jwalitptl/bloodbank-api/internal/service/bank"
	bloodtestService "github.com/jwalitptl/bloodbank-api/internal/service/bloodtest"
	donationService "github.com/jwalitptl/bloodbank-api/internal/service/donation"
	donorService "github.com/jwalitptl/bloodbank-api/internal/service/donor"
	eventService "github.com/jwalitptl/bloodbank-api/internal/service/event"
	patientService "github.com/jwalitptl/bloodbank-api/internal/service/patient"
	requestService "github.com/jwalitptl/bloodbank-api/internal/service/request"
	staffService "github.com/jwalitptl/bloodbank-api/internal/service/staff"
	"github.com/jwalitptl/bloodbank-api/internal/validation"
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

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	adapter := schema.New(cfg.Database.LegacySchema)
	log.Info("schema backend selected", "backend", adapter.Backend())

	// The legacy layout is managed externally; never touch its schema.
	if !cfg.Database.LegacySchema {
		if err := postgres.Bootstrap(context.Background(), db, cfg.Database.SeedDemoData, log); err != nil {
			log.Fatal(err, "failed to bootstrap database")
		}
	}

	donorRepo := postgres.NewDonorRepository(db, adapter)
	bankRepo := postgres.NewBankRepository(db, adapter)
	donationRepo := postgres.NewDonationRepository(db, adapter)
	testRepo := postgres.NewTestRepository(db, adapter)
	patientRepo := postgres.NewPatientRepository(db, adapter)
	requestRepo := postgres.NewRequestRepository(db, adapter)
	staffRepo := postgres.NewStaffRepository(db, adapter)

	var outboxRepo repository.OutboxRepository
	if !cfg.Database.LegacySchema {
		outboxRepo = postgres.NewOutboxRepository(db)
	}

	validator := validation.NewEngine()
	emailSvc := email.NewService(cfg.SMTP)
	eventSvc := eventService.NewService(outboxRepo, log)

	donorSvc := donorService.NewService(donorRepo, validator)
	bankSvc := bankService.NewService(bankRepo, validator)
	donationSvc := donationService.NewService(donationRepo, testRepo, validator, eventSvc)
	testSvc := bloodtestService.NewService(testRepo)
	patientSvc := patientService.NewService(patientRepo)
	requestSvc := requestService.NewService(requestRepo, patientRepo, bankRepo, eventSvc, emailSvc, log)
	staffSvc := staffService.NewService(staffRepo)
	authSvc := authService.NewService(donorRepo, bankRepo)

	m := metrics.NewMetrics("bloodbank")

	r := router.NewRouter(
		health.NewHandler(db),
		m,
		router.RouterConfig{
			RateLimit:  rate.Limit(cfg.Server.RateLimit),
			RateBurst:  cfg.Server.RateBurst,
			CORSConfig: middleware.DefaultCORSConfig(),
		},
		donorHandler.NewHandler(donorSvc),
		bankHandler.NewHandler(bankSvc),
		donationHandler.NewHandler(donationSvc),
		bloodtestHandler.NewHandler(testSvc),
		patientHandler.NewHandler(patientSvc),
		requestHandler.NewHandler(requestSvc),
		staffHandler.NewHandler(staffSvc),
		authHandler.NewHandler(authSvc),
	)
	r.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The outbox worker only runs where the outbox table exists and a broker
	// is configured.
	if outboxRepo != nil && cfg.Redis.URL != "" {
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

		processor := worker.NewOutboxProcessor(outboxRepo, broker, worker.OutboxProcessorConfig{
			BatchSize:     cfg.Outbox.BatchSize,
			PollInterval:  time.Duration(cfg.Outbox.PollSeconds) * time.Second,
			RetryAttempts: cfg.Outbox.RetryAttempts,
			RetryDelay:    time.Second,
		}, log, m)
		go processor.Start(ctx)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, "forced shutdown")
		os.Exit(1)
	}
}
