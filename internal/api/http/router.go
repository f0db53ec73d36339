package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Lucasdx7/Sistema-sub000/internal/api/http/handlers"
	"github.com/Lucasdx7/Sistema-sub000/internal/auth"
	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
	"github.com/Lucasdx7/Sistema-sub000/internal/realtime"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Sessoes        *handlers.SessoesHandler
	Cardapio       *handlers.CardapioHandler
	Mesas          *handlers.MesasHandler
	Usuarios       *handlers.UsuariosHandler
	AuthMiddleware *auth.AuthMiddleware
	Broadcaster    *realtime.Broadcaster
	Logger         *zap.Logger
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/login-cliente", cfg.Auth.LoginCliente)

	sessoes := app.Group("/sessoes", cfg.AuthMiddleware.Handle)
	sessoes.Post("/iniciar", auth.RequireMesa(), cfg.Sessoes.Iniciar)
	sessoes.Post("/:id/fechar", auth.RequireAutenticado(), cfg.Sessoes.Fechar)
	sessoes.Get("/:id/conta", auth.RequireAutenticado(), cfg.Sessoes.Conta)
	sessoes.Post("/:id/pedidos", auth.RequireMesa(), cfg.Sessoes.LancarPedido)

	pedidos := app.Group("/pedidos", cfg.AuthMiddleware.Handle)
	pedidos.Post("/:id/cancelar", auth.RequireNivel(), cfg.Sessoes.CancelarPedido)

	chamados := app.Group("/chamados", cfg.AuthMiddleware.Handle)
	chamados.Post("/garcom", auth.RequireMesa(), cfg.Sessoes.ChamarGarcom)

	mesas := app.Group("/mesas", cfg.AuthMiddleware.Handle, auth.RequireNivel())
	mesas.Get("/", cfg.Mesas.Listar)
	mesas.Post("/", auth.RequireNivel(domain.NivelGerente), cfg.Mesas.Criar)
	mesas.Get("/:id/sessao", cfg.Sessoes.SessaoDaMesa)

	usuarios := app.Group("/usuarios", cfg.AuthMiddleware.Handle, auth.RequireNivel(domain.NivelGerente))
	usuarios.Get("/", cfg.Usuarios.Listar)
	usuarios.Post("/", cfg.Usuarios.Criar)

	cardapio := app.Group("/cardapio", cfg.AuthMiddleware.Handle)
	cardapio.Get("/", auth.RequireAutenticado(), cfg.Cardapio.Listar)
	cardapio.Post("/", auth.RequireNivel(domain.NivelGerente), cfg.Cardapio.Criar)
	cardapio.Put("/:id", auth.RequireNivel(domain.NivelGerente), cfg.Cardapio.Atualizar)
	cardapio.Delete("/:id", auth.RequireNivel(domain.NivelGerente), cfg.Cardapio.Remover)

	app.Get("/ws", realtime.UpgradeGuard(), cfg.AuthMiddleware.HandleQueryToken, realtime.Handler(cfg.Broadcaster, cfg.Logger))
}
