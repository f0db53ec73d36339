package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Lucasdx7/Sistema-sub000/internal/api/dto"
	"github.com/Lucasdx7/Sistema-sub000/internal/auth"
	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
	"github.com/Lucasdx7/Sistema-sub000/internal/service"
	apperrors "github.com/Lucasdx7/Sistema-sub000/pkg/util"
)

// CardapioHandler exposes menu listing and maintenance.
type CardapioHandler struct {
	cardapio *service.CardapioService
}

// NewCardapioHandler constructs handler.
func NewCardapioHandler(cardapioService *service.CardapioService) *CardapioHandler {
	return &CardapioHandler{cardapio: cardapioService}
}

// Listar handles GET /cardapio.
func (h *CardapioHandler) Listar(c *fiber.Ctx) error {
	itens, err := h.cardapio.Listar(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.ItemCardapioResponse, 0, len(itens))
	for i := range itens {
		out = append(out, dto.NewItemCardapioResponse(&itens[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Criar handles POST /cardapio (manager only).
func (h *CardapioHandler) Criar(c *fiber.Ctx) error {
	item, err := parseItem(c)
	if err != nil {
		return err
	}

	criado, err := h.cardapio.Criar(c.Context(), item, actorDe(mustPrincipal(c)))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewItemCardapioResponse(criado)})
}

// Atualizar handles PUT /cardapio/:id (manager only).
func (h *CardapioHandler) Atualizar(c *fiber.Ctx) error {
	item, err := parseItem(c)
	if err != nil {
		return err
	}
	item.ID = c.Params("id")

	atualizado, err := h.cardapio.Atualizar(c.Context(), item, actorDe(mustPrincipal(c)))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewItemCardapioResponse(atualizado)})
}

// Remover handles DELETE /cardapio/:id (manager only).
func (h *CardapioHandler) Remover(c *fiber.Ctx) error {
	if err := h.cardapio.Remover(c.Context(), c.Params("id"), actorDe(mustPrincipal(c))); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseItem(c *fiber.Ctx) (*domain.ItemCardapio, error) {
	var req dto.ItemCardapioRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("corpo da requisição inválido", nil)
	}

	disponivel := true
	if req.Disponivel != nil {
		disponivel = *req.Disponivel
	}
	return &domain.ItemCardapio{
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		Categoria:     req.Categoria,
		PrecoCentavos: req.PrecoCentavos,
		Disponivel:    disponivel,
	}, nil
}

func mustPrincipal(c *fiber.Ctx) *auth.Principal {
	principal, _ := auth.PrincipalFromContext(c)
	return principal
}
