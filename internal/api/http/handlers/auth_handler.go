package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Lucasdx7/Sistema-sub000/internal/api/dto"
	"github.com/Lucasdx7/Sistema-sub000/internal/service"
	apperrors "github.com/Lucasdx7/Sistema-sub000/pkg/util"
)

// AuthHandler exposes the two login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login (staff).
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("corpo da requisição inválido", nil)
	}
	if strings.TrimSpace(req.Email) == "" || req.Senha == "" {
		return apperrors.NewValidationError("email e senha são obrigatórios", nil)
	}

	usuario, token, exp, err := h.auth.LoginUsuario(c.Context(), req.Email, req.Senha)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"usuario": dto.UsuarioResponse{
				ID:    usuario.ID,
				Nome:  usuario.Nome,
				Email: usuario.Email,
				Nivel: usuario.Nivel,
			},
			"auth": dto.AuthResponse{Token: token, ExpiraEm: exp},
		},
	})
}

// LoginCliente handles POST /auth/login-cliente (table device).
func (h *AuthHandler) LoginCliente(c *fiber.Ctx) error {
	var req dto.LoginClienteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("corpo da requisição inválido", nil)
	}
	if strings.TrimSpace(req.NomeUsuario) == "" || req.Senha == "" {
		return apperrors.NewValidationError("nome_usuario e senha são obrigatórios", nil)
	}

	mesa, token, exp, err := h.auth.LoginMesa(c.Context(), req.NomeUsuario, req.Senha)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"mesa": dto.MesaResponse{ID: mesa.ID, Nome: mesa.Nome},
			"auth": dto.AuthResponse{Token: token, ExpiraEm: exp},
		},
	})
}
