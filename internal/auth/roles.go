package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
	apperrors "github.com/Lucasdx7/Sistema-sub000/pkg/util"
)

// RequireMesa ensures a table-device principal is authenticated.
func RequireMesa() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Kind != domain.PrincipalMesa || principal.Mesa == nil {
			return apperrors.NewForbidden("acesso restrito a mesas")
		}
		return c.Next()
	}
}

// RequireNivel ensures the staff principal has one of the allowed access levels.
func RequireNivel(permitidos ...domain.NivelAcesso) fiber.Handler {
	permitidoSet := make(map[domain.NivelAcesso]struct{}, len(permitidos))
	for _, nivel := range permitidos {
		permitidoSet[nivel] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Kind != domain.PrincipalUsuario || principal.Usuario == nil {
			return apperrors.NewForbidden("acesso restrito a funcionários")
		}
		if len(permitidoSet) == 0 {
			return c.Next()
		}
		if _, exists := permitidoSet[principal.Usuario.Nivel]; !exists {
			return apperrors.NewForbidden("nível de acesso insuficiente")
		}
		return c.Next()
	}
}

// RequireAutenticado ensures caller is authenticated (mesa or usuário).
func RequireAutenticado() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("não autenticado")
		}
		return c.Next()
	}
}
