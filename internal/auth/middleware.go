package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
	"github.com/Lucasdx7/Sistema-sub000/internal/repository"
	apperrors "github.com/Lucasdx7/Sistema-sub000/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller: exactly one of Mesa or
// Usuario is set, selected by Kind.
type Principal struct {
	Kind    domain.PrincipalKind
	Mesa    *domain.Mesa
	Usuario *domain.Usuario
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens   *TokenManager
	mesas    repository.MesaRepository
	usuarios repository.UsuarioRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, mesas repository.MesaRepository, usuarios repository.UsuarioRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, mesas: mesas, usuarios: usuarios}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return apperrors.NewUnauthorized("token de autenticação ausente")
	}
	return m.authenticate(c, token)
}

// HandleQueryToken authenticates from the "token" query parameter. The
// realtime channel cannot send an Authorization header from a browser
// WebSocket, so the upgrade request carries the token in the URL.
func (m *AuthMiddleware) HandleQueryToken(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		token = bearerToken(c)
	}
	if token == "" {
		return apperrors.NewUnauthorized("token de autenticação ausente")
	}
	return m.authenticate(c, token)
}

func (m *AuthMiddleware) authenticate(c *fiber.Ctx, token string) error {
	claims, err := m.tokens.Parse(token)
	if err != nil {
		return apperrors.NewUnauthorized("token inválido ou expirado")
	}

	principal := &Principal{Kind: claims.Kind}

	switch claims.Kind {
	case domain.PrincipalMesa:
		mesa, err := m.mesas.GetByID(c.Context(), claims.SubjectID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewUnauthorized("mesa não encontrada")
			}
			return apperrors.MapError(err)
		}
		if !mesa.Ativa {
			return apperrors.NewUnauthorized("mesa desativada")
		}
		principal.Mesa = mesa
	case domain.PrincipalUsuario:
		usuario, err := m.usuarios.GetByID(c.Context(), claims.SubjectID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewUnauthorized("usuário não encontrado")
			}
			return apperrors.MapError(err)
		}
		if !usuario.Ativo {
			return apperrors.NewUnauthorized("usuário desativado")
		}
		principal.Usuario = usuario
	default:
		return apperrors.NewUnauthorized("tipo de principal desconhecido")
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
