package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Lucasdx7/Sistema-sub000/internal/api/dto"
	"github.com/Lucasdx7/Sistema-sub000/internal/auth"
	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
	"github.com/Lucasdx7/Sistema-sub000/internal/events"
	"github.com/Lucasdx7/Sistema-sub000/internal/service"
	apperrors "github.com/Lucasdx7/Sistema-sub000/pkg/util"
)

// SessoesHandler exposes the session lifecycle and ordering endpoints.
type SessoesHandler struct {
	sessoes *service.SessaoService
}

// NewSessoesHandler constructs handler.
func NewSessoesHandler(sessaoService *service.SessaoService) *SessoesHandler {
	return &SessoesHandler{sessoes: sessaoService}
}

// Iniciar handles POST /sessoes/iniciar (table token).
func (h *SessoesHandler) Iniciar(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.IniciarSessaoRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("corpo da requisição inválido", nil)
	}
	if strings.TrimSpace(req.NomeCliente) == "" {
		return apperrors.NewValidationError("nome_cliente é obrigatório", nil)
	}

	sessao, err := h.sessoes.Abrir(c.Context(), principal.Mesa, req.NomeCliente, req.TelefoneCliente)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"sessao_id":    sessao.ID,
			"nome_cliente": sessao.NomeCliente,
		},
	})
}

// Fechar handles POST /sessoes/:id/fechar (table or staff token).
func (h *SessoesHandler) Fechar(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	sessaoID := c.Params("id")

	if err := h.autorizarSessao(c, principal, sessaoID); err != nil {
		return err
	}

	sessao, err := h.sessoes.Fechar(c.Context(), sessaoID, actorDe(principal))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.NewSessaoResponse(sessao)})
}

// Conta handles GET /sessoes/:id/conta.
func (h *SessoesHandler) Conta(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	sessaoID := c.Params("id")

	conta, err := h.sessoes.Conta(c.Context(), sessaoID)
	if err != nil {
		return err
	}
	if principal.Kind == domain.PrincipalMesa && conta.Sessao.MesaID != principal.Mesa.ID {
		return apperrors.NewForbidden("sessão pertence a outra mesa")
	}

	return c.JSON(fiber.Map{"data": dto.NewContaResponse(conta)})
}

// LancarPedido handles POST /sessoes/:id/pedidos (table token).
func (h *SessoesHandler) LancarPedido(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	sessaoID := c.Params("id")

	if err := h.autorizarSessao(c, principal, sessaoID); err != nil {
		return err
	}

	var req dto.LancarPedidoRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("corpo da requisição inválido", nil)
	}
	if req.ItemID == "" {
		return apperrors.NewValidationError("item_id é obrigatório", nil)
	}

	pedido, err := h.sessoes.LancarPedido(c.Context(), sessaoID, req.ItemID, req.Quantidade, req.Observacao, actorDe(principal))
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewPedidoResponse(pedido)})
}

// CancelarPedido handles POST /pedidos/:id/cancelar (staff token).
func (h *SessoesHandler) CancelarPedido(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	pedido, err := h.sessoes.CancelarPedido(c.Context(), c.Params("id"), actorDe(principal))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.NewPedidoResponse(pedido)})
}

// ChamarGarcom handles POST /chamados/garcom (table token).
func (h *SessoesHandler) ChamarGarcom(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	if err := h.sessoes.ChamarGarcom(c.Context(), principal.Mesa); err != nil {
		return err
	}
	return c.SendStatus(http.StatusAccepted)
}

// SessaoDaMesa handles GET /mesas/:id/sessao (staff token).
func (h *SessoesHandler) SessaoDaMesa(c *fiber.Ctx) error {
	sessao, err := h.sessoes.BuscarAbertaPorMesa(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if sessao == nil {
		return apperrors.NewNotFound("sessão aberta", map[string]any{"mesa_id": c.Params("id")})
	}
	return c.JSON(fiber.Map{"data": dto.NewSessaoResponse(sessao)})
}

// autorizarSessao lets staff act on any session and restricts a table
// device to its own open session.
func (h *SessoesHandler) autorizarSessao(c *fiber.Ctx, principal *auth.Principal, sessaoID string) error {
	if principal.Kind != domain.PrincipalMesa {
		return nil
	}
	sessao, err := h.sessoes.BuscarAbertaPorMesa(c.Context(), principal.Mesa.ID)
	if err != nil {
		return err
	}
	if sessao == nil || sessao.ID != sessaoID {
		return apperrors.NewForbidden("sessão pertence a outra mesa")
	}
	return nil
}

func actorDe(principal *auth.Principal) events.Actor {
	if principal.Kind == domain.PrincipalMesa {
		return service.MesaActor(principal.Mesa.ID)
	}
	return service.UsuarioActor(principal.Usuario.ID)
}
