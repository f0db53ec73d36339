package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Lucasdx7/Sistema-sub000/internal/auth"
	"github.com/Lucasdx7/Sistema-sub000/internal/config"
	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
	"github.com/Lucasdx7/Sistema-sub000/internal/repository"
	apperrors "github.com/Lucasdx7/Sistema-sub000/pkg/util"
)

// AuthService coordinates login flows and principal provisioning.
type AuthService struct {
	usuarios   repository.UsuarioRepository
	mesas      repository.MesaRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UsuarioRepo repository.UsuarioRepository
	MesaRepo    repository.MesaRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		usuarios:   deps.UsuarioRepo,
		mesas:      deps.MesaRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.StaffTokenTTLHours, cfg.Auth.TableTokenTTLHours),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// LoginUsuario authenticates a staff account by email and password.
func (s *AuthService) LoginUsuario(ctx context.Context, email, senha string) (*domain.Usuario, string, time.Time, error) {
	usuario, err := s.usuarios.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("credenciais inválidas")
		}
		return nil, "", time.Time{}, err
	}
	if !usuario.Ativo {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("usuário desativado")
	}
	if err := auth.ComparePassword(usuario.SenhaHash, senha); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("credenciais inválidas")
	}

	token, exp, err := s.tokenMgr.Generate(usuario.ID, domain.PrincipalUsuario)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return usuario, token, exp, nil
}

// LoginMesa authenticates a table device by its provisioned credentials.
func (s *AuthService) LoginMesa(ctx context.Context, nomeUsuario, senha string) (*domain.Mesa, string, time.Time, error) {
	mesa, err := s.mesas.GetByNomeUsuario(ctx, nomeUsuario)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("credenciais inválidas")
		}
		return nil, "", time.Time{}, err
	}
	if !mesa.Ativa {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("mesa desativada")
	}
	if err := auth.ComparePassword(mesa.SenhaHash, senha); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("credenciais inválidas")
	}

	token, exp, err := s.tokenMgr.Generate(mesa.ID, domain.PrincipalMesa)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return mesa, token, exp, nil
}

// CriarUsuario provisions a staff account.
func (s *AuthService) CriarUsuario(ctx context.Context, nome, email, senha string, nivel domain.NivelAcesso) (*domain.Usuario, error) {
	if _, err := s.usuarios.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email já cadastrado", nil)
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(senha, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	usuario := &domain.Usuario{
		Nome:      nome,
		Email:     email,
		SenhaHash: hash,
		Nivel:     nivel,
		Ativo:     true,
	}
	if err := s.usuarios.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// CriarMesa provisions a table device with its login credentials.
func (s *AuthService) CriarMesa(ctx context.Context, nome, nomeUsuario, senha string) (*domain.Mesa, error) {
	if _, err := s.mesas.GetByNomeUsuario(ctx, nomeUsuario); err == nil {
		return nil, apperrors.NewConflict("nome de usuário já cadastrado", nil)
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(senha, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	mesa := &domain.Mesa{
		Nome:        nome,
		NomeUsuario: nomeUsuario,
		SenhaHash:   hash,
		Ativa:       true,
	}
	if err := s.mesas.Create(ctx, mesa); err != nil {
		return nil, err
	}
	return mesa, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
