package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
	"github.com/Lucasdx7/Sistema-sub000/internal/events"
	"github.com/Lucasdx7/Sistema-sub000/internal/repository"
	apperrors "github.com/Lucasdx7/Sistema-sub000/pkg/util"
)

// ContaSessao is the itemized account for one session. Cancelled lines
// are listed for transparency but contribute nothing to the total.
type ContaSessao struct {
	Sessao        *domain.Sessao
	Pedidos       []domain.Pedido
	TotalCentavos int64
}

// SessaoDependencies groups repository and infra requirements.
type SessaoDependencies struct {
	SessaoRepo   repository.SessaoRepository
	PedidoRepo   repository.PedidoRepository
	MesaRepo     repository.MesaRepository
	CardapioRepo repository.CardapioRepository
	Dispatcher   events.Dispatcher
	Cooldown     CooldownStore
}

// SessaoService owns the session lifecycle: open, order, close, and the
// waiter call.
type SessaoService struct {
	sessoes     repository.SessaoRepository
	pedidos     repository.PedidoRepository
	mesas       repository.MesaRepository
	cardapio    repository.CardapioRepository
	dispatcher  events.Dispatcher
	cooldown    CooldownStore
	cooldownTTL time.Duration
	logger      *zap.Logger
}

// NewSessaoService builds the service.
func NewSessaoService(deps SessaoDependencies, cooldownTTL time.Duration, logger *zap.Logger) *SessaoService {
	return &SessaoService{
		sessoes:     deps.SessaoRepo,
		pedidos:     deps.PedidoRepo,
		mesas:       deps.MesaRepo,
		cardapio:    deps.CardapioRepo,
		dispatcher:  deps.Dispatcher,
		cooldown:    deps.Cooldown,
		cooldownTTL: cooldownTTL,
		logger:      logger,
	}
}

// Abrir opens a new session for the table. It fails with CONFLICT when
// the table already has an open session; the decision to fail rather
// than supersede keeps unpaid orders from being orphaned.
func (s *SessaoService) Abrir(ctx context.Context, mesa *domain.Mesa, nomeCliente string, telefoneCliente *string) (*domain.Sessao, error) {
	sessao := &domain.Sessao{
		MesaID:          mesa.ID,
		NomeCliente:     nomeCliente,
		TelefoneCliente: telefoneCliente,
	}
	if err := s.sessoes.Abrir(ctx, sessao); err != nil {
		if err == repository.ErrSessaoAberta {
			return nil, apperrors.NewConflict("mesa já possui uma sessão aberta", map[string]any{"mesa_id": mesa.ID})
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventSessaoAberta,
		SessaoID: sessao.ID,
		Actor:    mesaActor(mesa.ID),
		Payload: events.SessaoAbertaPayload{
			MesaID:      mesa.ID,
			NomeMesa:    mesa.Nome,
			NomeCliente: sessao.NomeCliente,
		},
	})
	return sessao, nil
}

// Fechar closes the session, computing the final total from the
// non-cancelled order lines. Closing an unknown or already-closed
// session fails with NOT_FOUND; a double close never silently succeeds.
func (s *SessaoService) Fechar(ctx context.Context, sessaoID string, actor events.Actor) (*domain.Sessao, error) {
	total, err := s.pedidos.SomarSessao(ctx, sessaoID)
	if err != nil {
		return nil, err
	}

	sessao, err := s.sessoes.Fechar(ctx, sessaoID, total)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("sessão aberta", map[string]any{"sessao_id": sessaoID})
		}
		return nil, err
	}

	nomeMesa := s.nomeMesa(ctx, sessao.MesaID)
	s.publish(ctx, events.Event{
		Type:     events.EventSessaoFechada,
		SessaoID: sessao.ID,
		Actor:    actor,
		Payload: events.SessaoFechadaPayload{
			MesaID:        sessao.MesaID,
			NomeMesa:      nomeMesa,
			TotalCentavos: total,
		},
	})
	return sessao, nil
}

// BuscarAbertaPorMesa returns the table's open session, or nil.
func (s *SessaoService) BuscarAbertaPorMesa(ctx context.Context, mesaID string) (*domain.Sessao, error) {
	sessao, err := s.sessoes.GetAbertaPorMesa(ctx, mesaID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return sessao, nil
}

// Conta aggregates the session's order lines and total.
func (s *SessaoService) Conta(ctx context.Context, sessaoID string) (*ContaSessao, error) {
	sessao, err := s.sessoes.GetByID(ctx, sessaoID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("sessão", map[string]any{"sessao_id": sessaoID})
		}
		return nil, err
	}

	pedidos, err := s.pedidos.ListBySessao(ctx, sessaoID)
	if err != nil {
		return nil, err
	}

	var total int64
	for i := range pedidos {
		total += pedidos[i].Subtotal()
	}

	return &ContaSessao{Sessao: sessao, Pedidos: pedidos, TotalCentavos: total}, nil
}

// LancarPedido places an order line on an open session, snapshotting
// the menu item's name and price.
func (s *SessaoService) LancarPedido(ctx context.Context, sessaoID, itemID string, quantidade int, observacao *string, actor events.Actor) (*domain.Pedido, error) {
	if quantidade <= 0 {
		return nil, apperrors.NewValidationError("quantidade deve ser positiva", nil)
	}

	sessao, err := s.sessoes.GetByID(ctx, sessaoID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("sessão", map[string]any{"sessao_id": sessaoID})
		}
		return nil, err
	}
	if !sessao.Aberta() {
		return nil, apperrors.NewConflict("sessão já encerrada", map[string]any{"sessao_id": sessaoID})
	}

	item, err := s.cardapio.GetByID(ctx, itemID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("item do cardápio", map[string]any{"item_id": itemID})
		}
		return nil, err
	}
	if !item.Disponivel {
		return nil, apperrors.NewConflict("item indisponível", map[string]any{"item_id": itemID})
	}

	pedido := &domain.Pedido{
		SessaoID:              sessaoID,
		ItemID:                item.ID,
		NomeItem:              item.Nome,
		Quantidade:            quantidade,
		PrecoUnitarioCentavos: item.PrecoCentavos,
		Observacao:            observacao,
	}
	if err := s.pedidos.Create(ctx, pedido); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventPedidoLancado,
		SessaoID: sessaoID,
		Actor:    actor,
		Payload: events.PedidoPayload{
			PedidoID:   pedido.ID,
			NomeItem:   pedido.NomeItem,
			Quantidade: pedido.Quantidade,
		},
	})
	return pedido, nil
}

// CancelarPedido flags an order line as cancelled. The line stays on
// the account but stops counting toward the total.
func (s *SessaoService) CancelarPedido(ctx context.Context, pedidoID string, actor events.Actor) (*domain.Pedido, error) {
	pedido, err := s.pedidos.Cancelar(ctx, pedidoID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("pedido ativo", map[string]any{"pedido_id": pedidoID})
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventPedidoCancelado,
		SessaoID: pedido.SessaoID,
		Actor:    actor,
		Payload: events.PedidoPayload{
			PedidoID:   pedido.ID,
			NomeItem:   pedido.NomeItem,
			Quantidade: pedido.Quantidade,
		},
	})
	return pedido, nil
}

// ChamarGarcom notifies staff observers that the table wants service.
// Repeated calls inside the cooldown window fail with CONFLICT so a
// bored customer cannot flood the staff console.
func (s *SessaoService) ChamarGarcom(ctx context.Context, mesa *domain.Mesa) error {
	if s.cooldown != nil && s.cooldownTTL > 0 {
		ok, err := s.cooldown.TryAcquire(ctx, fmt.Sprintf("chamado_garcom:%s", mesa.ID), s.cooldownTTL)
		if err != nil {
			// Redis being down must not block a waiter call.
			s.logger.Warn("cooldown indisponível, liberando chamado", zap.Error(err))
		} else if !ok {
			return apperrors.NewConflict("garçom já foi chamado, aguarde", map[string]any{"mesa_id": mesa.ID})
		}
	}

	sessaoID := ""
	if sessao, err := s.BuscarAbertaPorMesa(ctx, mesa.ID); err == nil && sessao != nil {
		sessaoID = sessao.ID
	}

	s.publish(ctx, events.Event{
		Type:     events.EventGarcomChamado,
		SessaoID: sessaoID,
		Actor:    mesaActor(mesa.ID),
		Payload: events.GarcomChamadoPayload{
			MesaID:   mesa.ID,
			NomeMesa: mesa.Nome,
		},
	})
	return nil
}

func (s *SessaoService) publish(ctx context.Context, event events.Event) {
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("falha ao publicar evento", zap.String("tipo", string(event.Type)), zap.Error(err))
	}
}

func (s *SessaoService) nomeMesa(ctx context.Context, mesaID string) string {
	mesa, err := s.mesas.GetByID(ctx, mesaID)
	if err != nil {
		s.logger.Warn("mesa não encontrada ao montar evento", zap.String("mesa_id", mesaID), zap.Error(err))
		return ""
	}
	return mesa.Nome
}

func mesaActor(mesaID string) events.Actor {
	return events.Actor{Type: domain.PrincipalMesa, MesaID: &mesaID}
}

// UsuarioActor builds an Actor for a staff principal.
func UsuarioActor(usuarioID string) events.Actor {
	return events.Actor{Type: domain.PrincipalUsuario, UsuarioID: &usuarioID}
}

// MesaActor builds an Actor for a table principal.
func MesaActor(mesaID string) events.Actor {
	return mesaActor(mesaID)
}
