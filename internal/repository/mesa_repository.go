package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
)

// MesaRepository defines persistence access for table devices.
type MesaRepository interface {
	Create(ctx context.Context, mesa *domain.Mesa) error
	Update(ctx context.Context, mesa *domain.Mesa) error
	GetByID(ctx context.Context, id string) (*domain.Mesa, error)
	GetByNomeUsuario(ctx context.Context, nomeUsuario string) (*domain.Mesa, error)
	List(ctx context.Context) ([]domain.Mesa, error)
}

type mesaRepository struct {
	pool *pgxpool.Pool
}

// NewMesaRepository returns a Postgres-backed implementation.
func NewMesaRepository(pool *pgxpool.Pool) MesaRepository {
	return &mesaRepository{pool: pool}
}

func (r *mesaRepository) Create(ctx context.Context, mesa *domain.Mesa) error {
	const query = `
        INSERT INTO mesas (nome, nome_usuario, senha_hash, ativa)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		mesa.Nome,
		mesa.NomeUsuario,
		mesa.SenhaHash,
		mesa.Ativa,
	).Scan(&mesa.ID, &mesa.CreatedAt, &mesa.UpdatedAt)
}

func (r *mesaRepository) Update(ctx context.Context, mesa *domain.Mesa) error {
	const query = `
        UPDATE mesas SET nome=$1, nome_usuario=$2, senha_hash=$3, ativa=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		mesa.Nome,
		mesa.NomeUsuario,
		mesa.SenhaHash,
		mesa.Ativa,
		mesa.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *mesaRepository) GetByID(ctx context.Context, id string) (*domain.Mesa, error) {
	const query = `
        SELECT id, nome, nome_usuario, senha_hash, ativa, created_at, updated_at
        FROM mesas WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *mesaRepository) GetByNomeUsuario(ctx context.Context, nomeUsuario string) (*domain.Mesa, error) {
	const query = `
        SELECT id, nome, nome_usuario, senha_hash, ativa, created_at, updated_at
        FROM mesas WHERE nome_usuario=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, nomeUsuario))
}

func (r *mesaRepository) List(ctx context.Context) ([]domain.Mesa, error) {
	const query = `
        SELECT id, nome, nome_usuario, senha_hash, ativa, created_at, updated_at
        FROM mesas ORDER BY nome`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mesas []domain.Mesa
	for rows.Next() {
		var m domain.Mesa
		if err := rows.Scan(&m.ID, &m.Nome, &m.NomeUsuario, &m.SenhaHash, &m.Ativa, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		mesas = append(mesas, m)
	}
	return mesas, rows.Err()
}

func (r *mesaRepository) scanOne(row pgx.Row) (*domain.Mesa, error) {
	var m domain.Mesa
	if err := row.Scan(
		&m.ID,
		&m.Nome,
		&m.NomeUsuario,
		&m.SenhaHash,
		&m.Ativa,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}
