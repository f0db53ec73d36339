package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
	apperrors "github.com/Lucasdx7/Sistema-sub000/pkg/util"
)

type stubMesaRepo struct {
	mesas map[string]*domain.Mesa
}

func (r *stubMesaRepo) Create(context.Context, *domain.Mesa) error { return errors.New("unused") }
func (r *stubMesaRepo) Update(context.Context, *domain.Mesa) error { return errors.New("unused") }
func (r *stubMesaRepo) List(context.Context) ([]domain.Mesa, error) {
	return nil, errors.New("unused")
}

func (r *stubMesaRepo) GetByID(_ context.Context, id string) (*domain.Mesa, error) {
	m, ok := r.mesas[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return m, nil
}

func (r *stubMesaRepo) GetByNomeUsuario(_ context.Context, nomeUsuario string) (*domain.Mesa, error) {
	for _, m := range r.mesas {
		if m.NomeUsuario == nomeUsuario {
			return m, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type stubUsuarioRepo struct {
	usuarios map[string]*domain.Usuario
}

func (r *stubUsuarioRepo) Create(context.Context, *domain.Usuario) error {
	return errors.New("unused")
}
func (r *stubUsuarioRepo) Update(context.Context, *domain.Usuario) error {
	return errors.New("unused")
}
func (r *stubUsuarioRepo) List(context.Context) ([]domain.Usuario, error) {
	return nil, errors.New("unused")
}

func (r *stubUsuarioRepo) GetByID(_ context.Context, id string) (*domain.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func (r *stubUsuarioRepo) GetByEmail(_ context.Context, email string) (*domain.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type middlewareFixture struct {
	app    *fiber.App
	tokens *TokenManager
}

func newMiddlewareFixture(t *testing.T, extra ...fiber.Handler) *middlewareFixture {
	t.Helper()
	tokens := NewTokenManager("segredo-teste", 24, 12)
	mesas := &stubMesaRepo{mesas: map[string]*domain.Mesa{
		"mesa-1": {ID: "mesa-1", Nome: "Mesa 1", NomeUsuario: "mesa1", Ativa: true},
		"mesa-2": {ID: "mesa-2", Nome: "Mesa 2", NomeUsuario: "mesa2", Ativa: false},
	}}
	usuarios := &stubUsuarioRepo{usuarios: map[string]*domain.Usuario{
		"usuario-1": {ID: "usuario-1", Nome: "Gerente", Email: "g@x", Nivel: domain.NivelGerente, Ativo: true},
		"usuario-2": {ID: "usuario-2", Nome: "Garçom", Email: "f@x", Nivel: domain.NivelFuncionario, Ativo: true},
		"usuario-3": {ID: "usuario-3", Nome: "Desligado", Email: "d@x", Nivel: domain.NivelFuncionario, Ativo: false},
	}}
	middleware := NewAuthMiddleware(tokens, mesas, usuarios)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": de.Code})
		},
	})

	handlers := append([]fiber.Handler{middleware.Handle}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewInternalError(errors.New("principal ausente após autenticação"))
		}
		return c.JSON(fiber.Map{"tipo": principal.Kind})
	})
	app.Get("/protegido", handlers...)

	app.Get("/ws-guard", middleware.HandleQueryToken, func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	return &middlewareFixture{app: app, tokens: tokens}
}

func (f *middlewareFixture) request(t *testing.T, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := f.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	return resp
}

func (f *middlewareFixture) tokenFor(t *testing.T, id string, kind domain.PrincipalKind) string {
	t.Helper()
	token, _, err := f.tokens.Generate(id, kind)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return token
}

func TestHandleRejeitaRequisicoesSemCredencial(t *testing.T) {
	t.Parallel()
	f := newMiddlewareFixture(t)

	cases := []struct {
		name   string
		header string
	}{
		{name: "sem header", header: ""},
		{name: "esquema errado", header: "Basic abc"},
		{name: "token lixo", header: "Bearer nao-e-um-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := f.request(t, "/protegido", tc.header)
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", resp.StatusCode)
			}
		})
	}
}

func TestHandleAutenticaAmbosTipos(t *testing.T) {
	t.Parallel()
	f := newMiddlewareFixture(t)

	cases := []struct {
		name string
		id   string
		kind domain.PrincipalKind
	}{
		{name: "staff", id: "usuario-1", kind: domain.PrincipalUsuario},
		{name: "mesa", id: "mesa-1", kind: domain.PrincipalMesa},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := f.tokenFor(t, tc.id, tc.kind)
			resp := f.request(t, "/protegido", "Bearer "+token)
			if resp.StatusCode != http.StatusOK {
				t.Errorf("status = %d, want 200", resp.StatusCode)
			}
		})
	}
}

func TestHandleRejeitaPrincipalRemovidoOuInativo(t *testing.T) {
	t.Parallel()
	f := newMiddlewareFixture(t)

	cases := []struct {
		name string
		id   string
		kind domain.PrincipalKind
	}{
		{name: "usuario removido", id: "usuario-999", kind: domain.PrincipalUsuario},
		{name: "usuario desativado", id: "usuario-3", kind: domain.PrincipalUsuario},
		{name: "mesa removida", id: "mesa-999", kind: domain.PrincipalMesa},
		{name: "mesa desativada", id: "mesa-2", kind: domain.PrincipalMesa},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := f.tokenFor(t, tc.id, tc.kind)
			resp := f.request(t, "/protegido", "Bearer "+token)
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", resp.StatusCode)
			}
		})
	}
}

func TestHandleRejeitaTokenExpirado(t *testing.T) {
	t.Parallel()
	f := newMiddlewareFixture(t)
	f.tokens.staffTTL = -time.Minute

	token := f.tokenFor(t, "usuario-1", domain.PrincipalUsuario)
	resp := f.request(t, "/protegido", "Bearer "+token)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireMesaBloqueiaStaff(t *testing.T) {
	t.Parallel()
	f := newMiddlewareFixture(t, RequireMesa())

	resp := f.request(t, "/protegido", "Bearer "+f.tokenFor(t, "usuario-1", domain.PrincipalUsuario))
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("staff on table route: status = %d, want 403", resp.StatusCode)
	}

	resp = f.request(t, "/protegido", "Bearer "+f.tokenFor(t, "mesa-1", domain.PrincipalMesa))
	if resp.StatusCode != http.StatusOK {
		t.Errorf("table on table route: status = %d, want 200", resp.StatusCode)
	}
}

func TestRequireNivelRestringePorNivel(t *testing.T) {
	t.Parallel()
	f := newMiddlewareFixture(t, RequireNivel(domain.NivelGerente))

	cases := []struct {
		id   string
		kind domain.PrincipalKind
		want int
	}{
		{id: "usuario-1", kind: domain.PrincipalUsuario, want: http.StatusOK},
		{id: "usuario-2", kind: domain.PrincipalUsuario, want: http.StatusForbidden},
		{id: "mesa-1", kind: domain.PrincipalMesa, want: http.StatusForbidden},
	}
	for _, tc := range cases {
		resp := f.request(t, "/protegido", "Bearer "+f.tokenFor(t, tc.id, tc.kind))
		if resp.StatusCode != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.id, resp.StatusCode, tc.want)
		}
	}
}

func TestHandleQueryTokenAceitaTokenNaURL(t *testing.T) {
	t.Parallel()
	f := newMiddlewareFixture(t)
	token := f.tokenFor(t, "mesa-1", domain.PrincipalMesa)

	resp := f.request(t, fmt.Sprintf("/ws-guard?token=%s", token), "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	resp = f.request(t, "/ws-guard", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("missing token: status = %d, want 401", resp.StatusCode)
	}
}
