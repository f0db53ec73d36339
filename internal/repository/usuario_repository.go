package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
)

// UsuarioRepository defines persistence access for staff accounts.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *domain.Usuario) error
	Update(ctx context.Context, usuario *domain.Usuario) error
	GetByID(ctx context.Context, id string) (*domain.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*domain.Usuario, error)
	List(ctx context.Context) ([]domain.Usuario, error)
}

type usuarioRepository struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository returns a Postgres-backed implementation.
func NewUsuarioRepository(pool *pgxpool.Pool) UsuarioRepository {
	return &usuarioRepository{pool: pool}
}

func (r *usuarioRepository) Create(ctx context.Context, usuario *domain.Usuario) error {
	const query = `
        INSERT INTO usuarios (nome, email, senha_hash, nivel_acesso, ativo)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		usuario.Nome,
		usuario.Email,
		usuario.SenhaHash,
		usuario.Nivel,
		usuario.Ativo,
	).Scan(&usuario.ID, &usuario.CreatedAt, &usuario.UpdatedAt)
}

func (r *usuarioRepository) Update(ctx context.Context, usuario *domain.Usuario) error {
	const query = `
        UPDATE usuarios SET nome=$1, email=$2, senha_hash=$3, nivel_acesso=$4, ativo=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		usuario.Nome,
		usuario.Email,
		usuario.SenhaHash,
		usuario.Nivel,
		usuario.Ativo,
		usuario.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *usuarioRepository) GetByID(ctx context.Context, id string) (*domain.Usuario, error) {
	const query = `
        SELECT id, nome, email, senha_hash, nivel_acesso, ativo, created_at, updated_at
        FROM usuarios WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *usuarioRepository) GetByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	const query = `
        SELECT id, nome, email, senha_hash, nivel_acesso, ativo, created_at, updated_at
        FROM usuarios WHERE email=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *usuarioRepository) List(ctx context.Context) ([]domain.Usuario, error) {
	const query = `
        SELECT id, nome, email, senha_hash, nivel_acesso, ativo, created_at, updated_at
        FROM usuarios ORDER BY nome`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usuarios []domain.Usuario
	for rows.Next() {
		var u domain.Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Nivel, &u.Ativo, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}

func (r *usuarioRepository) scanOne(row pgx.Row) (*domain.Usuario, error) {
	var u domain.Usuario
	if err := row.Scan(
		&u.ID,
		&u.Nome,
		&u.Email,
		&u.SenhaHash,
		&u.Nivel,
		&u.Ativo,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
