package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Lucasdx7/Sistema-sub000/internal/api/dto"
	"github.com/Lucasdx7/Sistema-sub000/internal/repository"
	"github.com/Lucasdx7/Sistema-sub000/internal/service"
	apperrors "github.com/Lucasdx7/Sistema-sub000/pkg/util"
)

// MesasHandler exposes table-device provisioning for the staff console.
type MesasHandler struct {
	auth  *service.AuthService
	mesas repository.MesaRepository
}

// NewMesasHandler constructs handler.
func NewMesasHandler(authService *service.AuthService, mesaRepo repository.MesaRepository) *MesasHandler {
	return &MesasHandler{auth: authService, mesas: mesaRepo}
}

// Listar handles GET /mesas (staff).
func (h *MesasHandler) Listar(c *fiber.Ctx) error {
	mesas, err := h.mesas.List(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.MesaResponse, 0, len(mesas))
	for i := range mesas {
		out = append(out, dto.MesaResponse{ID: mesas[i].ID, Nome: mesas[i].Nome})
	}
	return c.JSON(fiber.Map{"data": out})
}

// Criar handles POST /mesas (manager only).
func (h *MesasHandler) Criar(c *fiber.Ctx) error {
	var req dto.CriarMesaRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("corpo da requisição inválido", nil)
	}
	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.NomeUsuario) == "" || req.Senha == "" {
		return apperrors.NewValidationError("nome, nome_usuario e senha são obrigatórios", nil)
	}

	mesa, err := h.auth.CriarMesa(c.Context(), req.Nome, req.NomeUsuario, req.Senha)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.MesaResponse{ID: mesa.ID, Nome: mesa.Nome},
	})
}
