package main

import (
	"context"
	"fmt"

	"pulse-network-organizer/config"
	"pulse-network-organizer/internal/adapter/cache"
	"pulse-network-organizer/internal/events"
	"pulse-network-organizer/internal/followup"
	"pulse-network-organizer/internal/matching"
	api "pulse-network-organizer/internal/oapi"
	"pulse-network-organizer/internal/repository"
	"pulse-network-organizer/internal/telemetry"
	"pulse-network-organizer/internal/transport/http/middleware"
	handlers_fiber "pulse-network-organizer/internal/transport/http/server/handlers-fiber"
	"pulse-network-organizer/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd runs the HTTP API together with the follow-up scheduler
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the follow-up scheduler",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		return serve(cmd.Context(), cfg, log)
	},
}

func serve(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	tp, err := telemetry.New(ctx, cfg.Telemetry, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warnw("telemetry shutdown error", "error", err)
		}
	}()

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return err
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	deps, closeDeps, err := buildDeps(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeDeps()
	deps.Tracer = tp.Tracer()

	uc := usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout, deps)

	scheduler := followup.New(log, uc, deps.Publisher, cfg.HTTP.RequestTimeout)
	if err := scheduler.Start(cfg.FollowUp.Schedule); err != nil {
		return err
	}
	defer scheduler.Stop()

	serv := newServer(cfg, log, uc)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
	return nil
}

func newServer(cfg *config.Config, log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *fiber.App {
	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.LLM.Timeout + cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.CORSAllowedOrigins}))
	serv.Use(middleware.RequestLogger(log.Named("http")))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	api.RegisterHandlersWithOptions(serv, h, api.FiberServerOptions{
		OperationMiddlewares: map[string][]fiber.Handler{
			"PostContactsIdMatches": {middleware.NewRateLimiter(cfg.HTTP.RateLimitRPM, log).Handler()},
		},
	})
	return serv
}

// buildDeps picks the optional integrations enabled by configuration.
func buildDeps(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (usecase.Deps, func(), error) {
	deps := usecase.Deps{
		Settings: usecase.Settings{
			DuplicateThreshold:   cfg.Duplicates.SimilarityThreshold,
			DuplicateWindow:      cfg.Duplicates.Window(),
			DefaultFrequencyDays: cfg.FollowUp.DefaultFrequencyDays,
		},
	}
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warnw("redis unavailable, network cache disabled", "error", err, "addr", cfg.Redis.Addr)
			_ = client.Close()
		} else {
			deps.Cache = cache.NewRedisNetworkCache(client, cfg.Redis.GraphTTL)
			closers = append(closers, func() { _ = client.Close() })
		}
	}

	if cfg.LLM.APIKey != "" {
		m, err := matching.NewGenAI(ctx, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Timeout)
		if err != nil {
			closeAll()
			return usecase.Deps{}, nil, fmt.Errorf("init matcher: %w", err)
		}
		deps.Matcher = m
		log.Infow("llm matching enabled", "model", cfg.LLM.Model)
	} else {
		deps.Matcher = matching.Heuristic{}
	}

	if cfg.Events.AMQPURL != "" {
		pub, err := events.NewAMQP(cfg.Events.AMQPURL, cfg.Events.Exchange, log)
		if err != nil {
			closeAll()
			return usecase.Deps{}, nil, fmt.Errorf("init events: %w", err)
		}
		deps.Publisher = pub
		closers = append(closers, func() { _ = pub.Close() })
	} else {
		deps.Publisher = events.Noop{}
	}

	return deps, closeAll, nil
}
