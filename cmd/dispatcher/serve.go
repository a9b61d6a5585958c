package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"webhook-dispatcher/config"
	httpHandler "webhook-dispatcher/internal/adapter/http/handler"
	"webhook-dispatcher/internal/adapter/storage/memory"
	pgStorage "webhook-dispatcher/internal/adapter/storage/postgres"
	redisStorage "webhook-dispatcher/internal/adapter/storage/redis"
	"webhook-dispatcher/internal/core/ports"
	"webhook-dispatcher/internal/service"
	"webhook-dispatcher/internal/worker"
	"webhook-dispatcher/migrations"
	"webhook-dispatcher/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var cmdServe = &cobra.Command{
	Use:   "serve",
	Short: "run the management API and the delivery workers",
	RunE: func(c *cobra.Command, args []string) error {
		return serve(c.Context())
	},
}

type serveOptions struct {
	noWorkers bool
}

var serveOpts serveOptions

func init() {
	flags := cmdServe.Flags()

	flags.BoolVar(&serveOpts.noWorkers, "no-workers", false, "serve the API only, without consuming the delivery queue")

	cmdDispatcher.AddCommand(cmdServe)
}

// storage bundles the repositories of the selected backend.
type storage struct {
	webhooks   ports.WebhookRepository
	calls      ports.CallRepository
	transactor ports.DBTransactor
	checkers   []ports.HealthChecker
	close      func()
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := pgStorage.Migrate(ctx, pool, migrations.FS, log); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &storage{
			webhooks:   pgStorage.NewWebhookRepo(pool),
			calls:      pgStorage.NewCallRepo(pool),
			transactor: pgStorage.NewTransactor(pool),
			checkers:   []ports.HealthChecker{pgStorage.NewHealthCheck(pool)},
			close:      pool.Close,
		}, nil
	case "memory":
		log.Warn().Msg("Using in-memory storage, webhooks and calls are lost on restart")
		store := memory.NewStore()
		return &storage{
			webhooks:   memory.NewWebhookRepo(store),
			calls:      memory.NewCallRepo(store),
			transactor: memory.NewTransactor(store),
			close:      func() {},
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load(rootOpts.config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret is required")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("Starting webhook dispatcher")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.close()

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, cfg.Webhook.Concurrency+10, log)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer rdb.Close()

	cipher, err := service.NewXChaChaSecretCipher(cfg.Secrets.Key)
	if err != nil {
		return fmt.Errorf("initializing secret cipher: %w", err)
	}
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	wh := cfg.Webhook
	queue := redisStorage.NewJobQueue(rdb, wh.QueueName, redisStorage.JobQueueOptions{
		MaxAttempts: wh.MaxAttempts,
		BackoffBase: wh.BackoffBase,
		Lease:       wh.LeaseDuration,
	})

	dispatcherSvc := service.NewDispatcherService(store.webhooks, store.calls, queue, logger.Component(log, "dispatcher"))
	adminSvc := service.NewWebhookAdminService(store.webhooks, cipher, logger.Component(log, "webhook_admin"))

	delivery := service.NewDeliveryService(
		service.NewDeliveryHTTPClient(),
		cipher,
		service.NewHMACSignatureService(),
		service.DeliveryOptions{
			RequestTimeout: wh.RequestTimeout,
			UserAgent:      wh.UserAgent,
			CaptureLimit:   wh.ResponseCaptureLimit,
		},
		logger.Component(log, "delivery"),
	)
	processor := service.NewCallProcessor(
		store.calls,
		store.webhooks,
		store.transactor,
		redisStorage.NewLock(rdb),
		delivery,
		service.ProcessorOptions{
			MaxAttempts:          wh.MaxAttempts,
			AutoDisableThreshold: wh.AutoDisableThreshold,
			LockTTL:              wh.LockTTL,
			LockRetryDelay:       wh.LockRetryDelay,
			BackoffBase:          wh.BackoffBase,
		},
		logger.Component(log, "call_processor"),
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AdminSvc:       adminSvc,
		DispatcherSvc:  dispatcherSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: append(store.checkers, redisStorage.NewHealthCheck(rdb)),
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	if !serveOpts.noWorkers {
		pool := worker.NewPool(queue, processor, worker.Options{
			Concurrency:    wh.Concurrency,
			PollInterval:   wh.PollInterval,
			LockRetryDelay: wh.LockRetryDelay,
		}, log)
		g.Go(func() error {
			return pool.Run(gctx)
		})
	}

	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Dispatcher stopped with error")
		return err
	}

	log.Info().Msg("Dispatcher exited")
	return nil
}
