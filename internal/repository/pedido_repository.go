package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
)

// PedidoRepository encapsulates order-line persistence.
type PedidoRepository interface {
	Create(ctx context.Context, pedido *domain.Pedido) error
	// Cancelar flags the line as cancelled; pgx.ErrNoRows when the line
	// does not exist or is already cancelled.
	Cancelar(ctx context.Context, pedidoID string) (*domain.Pedido, error)
	ListBySessao(ctx context.Context, sessaoID string) ([]domain.Pedido, error)
	// SomarSessao returns the sum of quantidade*preco over non-cancelled
	// lines of the session.
	SomarSessao(ctx context.Context, sessaoID string) (int64, error)
}

type pedidoRepository struct {
	pool *pgxpool.Pool
}

// NewPedidoRepository returns a Postgres-backed implementation.
func NewPedidoRepository(pool *pgxpool.Pool) PedidoRepository {
	return &pedidoRepository{pool: pool}
}

func (r *pedidoRepository) Create(ctx context.Context, pedido *domain.Pedido) error {
	const query = `
        INSERT INTO pedidos (sessao_id, item_id, nome_item, quantidade, preco_unitario_centavos, observacao)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		pedido.SessaoID,
		pedido.ItemID,
		pedido.NomeItem,
		pedido.Quantidade,
		pedido.PrecoUnitarioCentavos,
		pedido.Observacao,
	).Scan(&pedido.ID, &pedido.CreatedAt)
}

func (r *pedidoRepository) Cancelar(ctx context.Context, pedidoID string) (*domain.Pedido, error) {
	const query = `
        UPDATE pedidos SET cancelado=TRUE
        WHERE id=$1 AND cancelado=FALSE
        RETURNING id, sessao_id, item_id, nome_item, quantidade, preco_unitario_centavos, observacao, cancelado, created_at`

	return r.scanOne(r.pool.QueryRow(ctx, query, pedidoID))
}

func (r *pedidoRepository) ListBySessao(ctx context.Context, sessaoID string) ([]domain.Pedido, error) {
	const query = `
        SELECT id, sessao_id, item_id, nome_item, quantidade, preco_unitario_centavos, observacao, cancelado, created_at
        FROM pedidos WHERE sessao_id=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, sessaoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pedidos []domain.Pedido
	for rows.Next() {
		var p domain.Pedido
		if err := rows.Scan(
			&p.ID,
			&p.SessaoID,
			&p.ItemID,
			&p.NomeItem,
			&p.Quantidade,
			&p.PrecoUnitarioCentavos,
			&p.Observacao,
			&p.Cancelado,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		pedidos = append(pedidos, p)
	}
	return pedidos, rows.Err()
}

func (r *pedidoRepository) SomarSessao(ctx context.Context, sessaoID string) (int64, error) {
	const query = `
        SELECT COALESCE(SUM(quantidade * preco_unitario_centavos), 0)
        FROM pedidos WHERE sessao_id=$1 AND cancelado=FALSE`

	var total int64
	if err := r.pool.QueryRow(ctx, query, sessaoID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *pedidoRepository) scanOne(row pgx.Row) (*domain.Pedido, error) {
	var p domain.Pedido
	if err := row.Scan(
		&p.ID,
		&p.SessaoID,
		&p.ItemID,
		&p.NomeItem,
		&p.Quantidade,
		&p.PrecoUnitarioCentavos,
		&p.Observacao,
		&p.Cancelado,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
