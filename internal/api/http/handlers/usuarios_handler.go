package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Lucasdx7/Sistema-sub000/internal/api/dto"
	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
	"github.com/Lucasdx7/Sistema-sub000/internal/repository"
	"github.com/Lucasdx7/Sistema-sub000/internal/service"
	apperrors "github.com/Lucasdx7/Sistema-sub000/pkg/util"
)

// UsuariosHandler exposes staff-account provisioning for managers.
type UsuariosHandler struct {
	auth     *service.AuthService
	usuarios repository.UsuarioRepository
}

// NewUsuariosHandler constructs handler.
func NewUsuariosHandler(authService *service.AuthService, usuarioRepo repository.UsuarioRepository) *UsuariosHandler {
	return &UsuariosHandler{auth: authService, usuarios: usuarioRepo}
}

// Listar handles GET /usuarios (manager only).
func (h *UsuariosHandler) Listar(c *fiber.Ctx) error {
	usuarios, err := h.usuarios.List(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		u := &usuarios[i]
		out = append(out, dto.UsuarioResponse{ID: u.ID, Nome: u.Nome, Email: u.Email, Nivel: u.Nivel})
	}
	return c.JSON(fiber.Map{"data": out})
}

// Criar handles POST /usuarios (manager only).
func (h *UsuariosHandler) Criar(c *fiber.Ctx) error {
	var req dto.CriarUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("corpo da requisição inválido", nil)
	}
	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.Email) == "" || req.Senha == "" {
		return apperrors.NewValidationError("nome, email e senha são obrigatórios", nil)
	}

	nivel := req.Nivel
	switch nivel {
	case domain.NivelGerente, domain.NivelFuncionario:
	case "":
		nivel = domain.NivelFuncionario
	default:
		return apperrors.NewValidationError("nivel_acesso inválido", map[string]any{"nivel_acesso": req.Nivel})
	}

	usuario, err := h.auth.CriarUsuario(c.Context(), req.Nome, req.Email, req.Senha, nivel)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.UsuarioResponse{ID: usuario.ID, Nome: usuario.Nome, Email: usuario.Email, Nivel: usuario.Nivel},
	})
}
