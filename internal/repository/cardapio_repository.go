package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
)

// CardapioRepository encapsulates menu-item persistence.
type CardapioRepository interface {
	Create(ctx context.Context, item *domain.ItemCardapio) error
	Update(ctx context.Context, item *domain.ItemCardapio) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.ItemCardapio, error)
	List(ctx context.Context) ([]domain.ItemCardapio, error)
}

type cardapioRepository struct {
	pool *pgxpool.Pool
}

// NewCardapioRepository returns a Postgres-backed implementation.
func NewCardapioRepository(pool *pgxpool.Pool) CardapioRepository {
	return &cardapioRepository{pool: pool}
}

func (r *cardapioRepository) Create(ctx context.Context, item *domain.ItemCardapio) error {
	const query = `
        INSERT INTO cardapio_itens (nome, descricao, categoria, preco_centavos, disponivel)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		item.Nome,
		item.Descricao,
		item.Categoria,
		item.PrecoCentavos,
		item.Disponivel,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *cardapioRepository) Update(ctx context.Context, item *domain.ItemCardapio) error {
	const query = `
        UPDATE cardapio_itens SET nome=$1, descricao=$2, categoria=$3, preco_centavos=$4, disponivel=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		item.Nome,
		item.Descricao,
		item.Categoria,
		item.PrecoCentavos,
		item.Disponivel,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cardapioRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cardapio_itens WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cardapioRepository) GetByID(ctx context.Context, id string) (*domain.ItemCardapio, error) {
	const query = `
        SELECT id, nome, descricao, categoria, preco_centavos, disponivel, created_at, updated_at
        FROM cardapio_itens WHERE id=$1`

	var item domain.ItemCardapio
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Nome,
		&item.Descricao,
		&item.Categoria,
		&item.PrecoCentavos,
		&item.Disponivel,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cardapioRepository) List(ctx context.Context) ([]domain.ItemCardapio, error) {
	const query = `
        SELECT id, nome, descricao, categoria, preco_centavos, disponivel, created_at, updated_at
        FROM cardapio_itens ORDER BY categoria, nome`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var itens []domain.ItemCardapio
	for rows.Next() {
		var item domain.ItemCardapio
		if err := rows.Scan(
			&item.ID,
			&item.Nome,
			&item.Descricao,
			&item.Categoria,
			&item.PrecoCentavos,
			&item.Disponivel,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		itens = append(itens, item)
	}
	return itens, rows.Err()
}
