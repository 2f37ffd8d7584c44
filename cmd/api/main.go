package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-gateway/internal/api/http"
	"github.com/spec-kit/helpdesk-gateway/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-gateway/internal/config"
	"github.com/spec-kit/helpdesk-gateway/internal/events"
	"github.com/spec-kit/helpdesk-gateway/internal/llm"
	"github.com/spec-kit/helpdesk-gateway/internal/observability"
	"github.com/spec-kit/helpdesk-gateway/internal/persistence"
	"github.com/spec-kit/helpdesk-gateway/internal/repository"
	"github.com/spec-kit/helpdesk-gateway/internal/service"
	"github.com/spec-kit/helpdesk-gateway/internal/tablestore"
	"github.com/spec-kit/helpdesk-gateway/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store tablestore.Store
	var storePinger handlers.Pinger

	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()

		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		store = tablestore.NewPostgresStore(pg.PoolHandle(), cfg.Store.Table)
		storePinger = pg
	case config.StoreBackendRedis:
		rd := persistence.NewRedis(cfg.Redis, logger)
		defer rd.Close()
		store = tablestore.NewRedisStore(rd.Client, cfg.Store.Table)
		storePinger = rd
	case config.StoreBackendMemory:
		store = tablestore.NewMemoryStore()
	default:
		logger.Fatal("unknown store backend", zap.String("backend", cfg.Store.Backend))
	}

	dispatcher := events.NewInMemoryDispatcher()

	ticketRepo := repository.NewTicketRepository(store)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	notificationService := service.NewNotificationService(dispatcher, logger)
	workflowService := service.NewWorkflowService(dispatcher, logger)
	completionService := service.NewCompletionService(llm.NewClient(cfg.Completion), logger)

	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, storePinger),
		Tickets:     handlers.NewTicketsHandler(ticketService),
		Notify:      handlers.NewNotificationsHandler(notificationService),
		Workflows:   handlers.NewWorkflowsHandler(workflowService),
		Completions: handlers.NewCompletionsHandler(completionService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
