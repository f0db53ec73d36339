package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
)

// ErrSessaoAberta is returned by Abrir when the table already has an
// open session. The sessoes_mesa_aberta_uidx partial unique index makes
// two concurrent opens race safely at the storage layer.
var ErrSessaoAberta = errors.New("mesa já possui uma sessão aberta")

// SessaoRepository encapsulates session persistence.
type SessaoRepository interface {
	Abrir(ctx context.Context, sessao *domain.Sessao) error
	// Fechar closes the session and records its final total. It returns
	// pgx.ErrNoRows when the session does not exist or is already closed.
	Fechar(ctx context.Context, sessaoID string, totalCentavos int64) (*domain.Sessao, error)
	GetByID(ctx context.Context, id string) (*domain.Sessao, error)
	GetAbertaPorMesa(ctx context.Context, mesaID string) (*domain.Sessao, error)
}

type sessaoRepository struct {
	pool *pgxpool.Pool
}

// NewSessaoRepository returns a Postgres-backed implementation.
func NewSessaoRepository(pool *pgxpool.Pool) SessaoRepository {
	return &sessaoRepository{pool: pool}
}

func (r *sessaoRepository) Abrir(ctx context.Context, sessao *domain.Sessao) error {
	const query = `
        INSERT INTO sessoes (mesa_id, nome_cliente, telefone_cliente)
        VALUES ($1, $2, $3)
        RETURNING id, aberta_em`

	err := r.pool.QueryRow(ctx, query,
		sessao.MesaID,
		sessao.NomeCliente,
		sessao.TelefoneCliente,
	).Scan(&sessao.ID, &sessao.AbertaEm)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "sessoes_mesa_aberta_uidx" {
			return ErrSessaoAberta
		}
		return err
	}
	return nil
}

func (r *sessaoRepository) Fechar(ctx context.Context, sessaoID string, totalCentavos int64) (*domain.Sessao, error) {
	const query = `
        UPDATE sessoes SET fechada_em=NOW(), total_centavos=$2
        WHERE id=$1 AND fechada_em IS NULL
        RETURNING id, mesa_id, nome_cliente, telefone_cliente, aberta_em, fechada_em, total_centavos`

	return r.scanOne(r.pool.QueryRow(ctx, query, sessaoID, totalCentavos))
}

func (r *sessaoRepository) GetByID(ctx context.Context, id string) (*domain.Sessao, error) {
	const query = `
        SELECT id, mesa_id, nome_cliente, telefone_cliente, aberta_em, fechada_em, total_centavos
        FROM sessoes WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *sessaoRepository) GetAbertaPorMesa(ctx context.Context, mesaID string) (*domain.Sessao, error) {
	const query = `
        SELECT id, mesa_id, nome_cliente, telefone_cliente, aberta_em, fechada_em, total_centavos
        FROM sessoes WHERE mesa_id=$1 AND fechada_em IS NULL`

	return r.scanOne(r.pool.QueryRow(ctx, query, mesaID))
}

func (r *sessaoRepository) scanOne(row pgx.Row) (*domain.Sessao, error) {
	var s domain.Sessao
	if err := row.Scan(
		&s.ID,
		&s.MesaID,
		&s.NomeCliente,
		&s.TelefoneCliente,
		&s.AbertaEm,
		&s.FechadaEm,
		&s.TotalCentavos,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
