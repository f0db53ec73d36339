package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
	"github.com/Lucasdx7/Sistema-sub000/internal/events"
)

type memCardapioRepo struct {
	seq   int
	itens map[string]*domain.ItemCardapio
}

func newMemCardapioRepo() *memCardapioRepo {
	return &memCardapioRepo{itens: make(map[string]*domain.ItemCardapio)}
}

func (r *memCardapioRepo) Create(_ context.Context, item *domain.ItemCardapio) error {
	r.seq++
	item.ID = fmt.Sprintf("item-%d", r.seq)
	copia := *item
	r.itens[item.ID] = &copia
	return nil
}

func (r *memCardapioRepo) Update(_ context.Context, item *domain.ItemCardapio) error {
	if _, ok := r.itens[item.ID]; !ok {
		return pgx.ErrNoRows
	}
	copia := *item
	r.itens[item.ID] = &copia
	return nil
}

func (r *memCardapioRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.itens[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.itens, id)
	return nil
}

func (r *memCardapioRepo) GetByID(_ context.Context, id string) (*domain.ItemCardapio, error) {
	item, ok := r.itens[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copia := *item
	return &copia, nil
}

func (r *memCardapioRepo) List(_ context.Context) ([]domain.ItemCardapio, error) {
	out := make([]domain.ItemCardapio, 0, len(r.itens))
	for _, item := range r.itens {
		out = append(out, *item)
	}
	return out, nil
}

func newCardapioFixture() (*CardapioService, *memCardapioRepo, *recordingDispatcher) {
	repo := newMemCardapioRepo()
	dispatcher := &recordingDispatcher{}
	return NewCardapioService(repo, dispatcher, zap.NewNop()), repo, dispatcher
}

func acoesPublicadas(d *recordingDispatcher) []string {
	var acoes []string
	for _, e := range d.published {
		if e.Type != events.EventCardapioAtualizado {
			continue
		}
		payload, ok := e.Payload.(events.CardapioAtualizadoPayload)
		if !ok {
			continue
		}
		acoes = append(acoes, payload.Acao)
	}
	return acoes
}

func TestCriarValidaItem(t *testing.T) {
	t.Parallel()
	svc, _, dispatcher := newCardapioFixture()
	actor := UsuarioActor("usuario-1")

	cases := []struct {
		name string
		item domain.ItemCardapio
	}{
		{name: "sem nome", item: domain.ItemCardapio{Categoria: "Lanches", PrecoCentavos: 1500}},
		{name: "sem categoria", item: domain.ItemCardapio{Nome: "X-Salada", PrecoCentavos: 1500}},
		{name: "preco zero", item: domain.ItemCardapio{Nome: "X-Salada", Categoria: "Lanches"}},
		{name: "preco negativo", item: domain.ItemCardapio{Nome: "X-Salada", Categoria: "Lanches", PrecoCentavos: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := tc.item
			_, err := svc.Criar(context.Background(), &item, actor)
			if codeOf(t, err) != "VALIDATION_FAILED" {
				t.Errorf("code = %q, want VALIDATION_FAILED", codeOf(t, err))
			}
		})
	}

	if len(dispatcher.published) != 0 {
		t.Fatalf("rejected mutations published %d events", len(dispatcher.published))
	}
}

func TestMutacoesPublicamCardapioAtualizado(t *testing.T) {
	t.Parallel()
	svc, _, dispatcher := newCardapioFixture()
	ctx := context.Background()
	actor := UsuarioActor("usuario-1")

	item, err := svc.Criar(ctx, &domain.ItemCardapio{Nome: "X-Salada", Categoria: "Lanches", PrecoCentavos: 1500, Disponivel: true}, actor)
	if err != nil {
		t.Fatalf("Criar() error: %v", err)
	}

	item.PrecoCentavos = 1700
	if _, err := svc.Atualizar(ctx, item, actor); err != nil {
		t.Fatalf("Atualizar() error: %v", err)
	}

	if err := svc.Remover(ctx, item.ID, actor); err != nil {
		t.Fatalf("Remover() error: %v", err)
	}

	got := acoesPublicadas(dispatcher)
	want := []string{"criado", "atualizado", "removido"}
	if len(got) != len(want) {
		t.Fatalf("published actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAtualizarERemoverInexistente(t *testing.T) {
	t.Parallel()
	svc, _, _ := newCardapioFixture()
	ctx := context.Background()
	actor := UsuarioActor("usuario-1")

	_, err := svc.Atualizar(ctx, &domain.ItemCardapio{ID: "item-999", Nome: "X", Categoria: "Lanches", PrecoCentavos: 100}, actor)
	if codeOf(t, err) != "NOT_FOUND" {
		t.Errorf("Atualizar() code = %q, want NOT_FOUND", codeOf(t, err))
	}

	if err := svc.Remover(ctx, "item-999", actor); codeOf(t, err) != "NOT_FOUND" {
		t.Errorf("Remover() code = %q, want NOT_FOUND", codeOf(t, err))
	}
}

func TestListarRetornaItensPersistidos(t *testing.T) {
	t.Parallel()
	svc, _, _ := newCardapioFixture()
	ctx := context.Background()
	actor := UsuarioActor("usuario-1")

	for _, nome := range []string{"X-Salada", "Suco de Laranja"} {
		if _, err := svc.Criar(ctx, &domain.ItemCardapio{Nome: nome, Categoria: "Geral", PrecoCentavos: 1000, Disponivel: true}, actor); err != nil {
			t.Fatalf("Criar(%q) error: %v", nome, err)
		}
	}

	itens, err := svc.Listar(ctx)
	if err != nil {
		t.Fatalf("Listar() error: %v", err)
	}
	if len(itens) != 2 {
		t.Fatalf("Listar() returned %d items, want 2", len(itens))
	}
}
