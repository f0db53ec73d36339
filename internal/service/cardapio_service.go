package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
	"github.com/Lucasdx7/Sistema-sub000/internal/events"
	"github.com/Lucasdx7/Sistema-sub000/internal/repository"
	apperrors "github.com/Lucasdx7/Sistema-sub000/pkg/util"
)

// CardapioService owns menu maintenance. Every mutation publishes a
// cardapio_atualizado event so connected clients refetch the menu.
type CardapioService struct {
	itens      repository.CardapioRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewCardapioService builds the service.
func NewCardapioService(itens repository.CardapioRepository, dispatcher events.Dispatcher, logger *zap.Logger) *CardapioService {
	return &CardapioService{itens: itens, dispatcher: dispatcher, logger: logger}
}

// Listar returns all menu items.
func (s *CardapioService) Listar(ctx context.Context) ([]domain.ItemCardapio, error) {
	return s.itens.List(ctx)
}

// Criar adds a menu item.
func (s *CardapioService) Criar(ctx context.Context, item *domain.ItemCardapio, actor events.Actor) (*domain.ItemCardapio, error) {
	if err := validarItem(item); err != nil {
		return nil, err
	}
	if err := s.itens.Create(ctx, item); err != nil {
		return nil, err
	}
	s.publishAtualizado(ctx, item.ID, "criado", actor)
	return item, nil
}

// Atualizar replaces a menu item's fields.
func (s *CardapioService) Atualizar(ctx context.Context, item *domain.ItemCardapio, actor events.Actor) (*domain.ItemCardapio, error) {
	if err := validarItem(item); err != nil {
		return nil, err
	}
	if err := s.itens.Update(ctx, item); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("item do cardápio", map[string]any{"item_id": item.ID})
		}
		return nil, err
	}
	s.publishAtualizado(ctx, item.ID, "atualizado", actor)
	return item, nil
}

// Remover deletes a menu item.
func (s *CardapioService) Remover(ctx context.Context, id string, actor events.Actor) error {
	if err := s.itens.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("item do cardápio", map[string]any{"item_id": id})
		}
		return err
	}
	s.publishAtualizado(ctx, id, "removido", actor)
	return nil
}

func (s *CardapioService) publishAtualizado(ctx context.Context, itemID, acao string, actor events.Actor) {
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventCardapioAtualizado,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   events.CardapioAtualizadoPayload{ItemID: itemID, Acao: acao},
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("falha ao publicar evento", zap.String("tipo", string(event.Type)), zap.Error(err))
	}
}

func validarItem(item *domain.ItemCardapio) error {
	details := map[string]any{}
	if strings.TrimSpace(item.Nome) == "" {
		details["nome"] = "obrigatório"
	}
	if strings.TrimSpace(item.Categoria) == "" {
		details["categoria"] = "obrigatória"
	}
	if item.PrecoCentavos <= 0 {
		details["preco_centavos"] = "deve ser positivo"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("item do cardápio inválido", details)
	}
	return nil
}
