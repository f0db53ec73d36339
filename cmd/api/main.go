package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Lucasdx7/Sistema-sub000/internal/api/http"
	"github.com/Lucasdx7/Sistema-sub000/internal/api/http/handlers"
	"github.com/Lucasdx7/Sistema-sub000/internal/auth"
	"github.com/Lucasdx7/Sistema-sub000/internal/config"
	"github.com/Lucasdx7/Sistema-sub000/internal/events"
	"github.com/Lucasdx7/Sistema-sub000/internal/observability"
	"github.com/Lucasdx7/Sistema-sub000/internal/persistence"
	"github.com/Lucasdx7/Sistema-sub000/internal/realtime"
	"github.com/Lucasdx7/Sistema-sub000/internal/repository"
	"github.com/Lucasdx7/Sistema-sub000/internal/service"
	"github.com/Lucasdx7/Sistema-sub000/internal/worker"
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	usuarioRepo := repository.NewUsuarioRepository(pool)
	mesaRepo := repository.NewMesaRepository(pool)
	sessaoRepo := repository.NewSessaoRepository(pool)
	pedidoRepo := repository.NewPedidoRepository(pool)
	cardapioRepo := repository.NewCardapioRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	broadcaster := realtime.NewBroadcaster(logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UsuarioRepo: usuarioRepo,
		MesaRepo:    mesaRepo,
	})
	sessaoService := service.NewSessaoService(service.SessaoDependencies{
		SessaoRepo:   sessaoRepo,
		PedidoRepo:   pedidoRepo,
		MesaRepo:     mesaRepo,
		CardapioRepo: cardapioRepo,
		Dispatcher:   dispatcher,
		Cooldown:     service.NewRedisCooldown(redis.Client),
	}, cfg.Realtime.WaiterCallCooldown(), logger)
	cardapioService := service.NewCardapioService(cardapioRepo, dispatcher, logger)

	relay := service.NewRealtimeRelay(dispatcher, broadcaster, logger)
	worker.StartRealtimeRelay(relay)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), mesaRepo, usuarioRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Sessoes:        handlers.NewSessoesHandler(sessaoService),
		Cardapio:       handlers.NewCardapioHandler(cardapioService),
		Mesas:          handlers.NewMesasHandler(authService, mesaRepo),
		Usuarios:       handlers.NewUsuariosHandler(authService, usuarioRepo),
		AuthMiddleware: authMiddleware,
		Broadcaster:    broadcaster,
		Logger:         logger,
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
