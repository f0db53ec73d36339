package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Lucasdx7/Sistema-sub000/internal/events"
	"github.com/Lucasdx7/Sistema-sub000/internal/realtime"
)

// RealtimeRelay bridges domain events to the broadcast channel. It
// subscribes to the dispatcher and translates each event into the wire
// frames that browser clients understand.
type RealtimeRelay struct {
	dispatcher  events.Dispatcher
	broadcaster *realtime.Broadcaster
	logger      *zap.Logger
}

// NewRealtimeRelay creates the relay.
func NewRealtimeRelay(dispatcher events.Dispatcher, broadcaster *realtime.Broadcaster, logger *zap.Logger) *RealtimeRelay {
	return &RealtimeRelay{
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// RegisterHandlers subscribes to events.
func (r *RealtimeRelay) RegisterHandlers() {
	if r.dispatcher == nil {
		return
	}
	r.dispatcher.Subscribe(events.EventCardapioAtualizado, r.handleCardapioAtualizado)
	r.dispatcher.Subscribe(events.EventGarcomChamado, r.handleGarcomChamado)
	r.dispatcher.Subscribe(events.EventSessaoFechada, r.handleSessaoFechada)
	r.dispatcher.SubscribeAll(r.handleContaAtualizada,
		events.EventPedidoLancado, events.EventPedidoCancelado)
}

func (r *RealtimeRelay) handleCardapioAtualizado(ctx context.Context, event events.Event) error {
	r.logger.Info("CardapioAtualizado", zap.Any("payload", event.Payload))
	// Clients refetch the full menu; the frame carries no item data.
	r.broadcaster.BroadcastTodos(realtime.Frame{Tipo: realtime.FrameCardapioAtualizado})
	return nil
}

func (r *RealtimeRelay) handleGarcomChamado(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.GarcomChamadoPayload)
	if !ok {
		r.logger.Warn("payload inesperado em garcom_chamado")
		return nil
	}
	r.logger.Info("GarcomChamado", zap.String("mesa", payload.NomeMesa))
	r.broadcaster.BroadcastTodos(realtime.Frame{
		Tipo:  realtime.FrameChamadoGarcom,
		Dados: map[string]any{"nomeMesa": payload.NomeMesa},
	})
	return nil
}

func (r *RealtimeRelay) handleSessaoFechada(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.SessaoFechadaPayload)
	if !ok {
		r.logger.Warn("payload inesperado em sessao_fechada")
		return nil
	}
	r.logger.Info("SessaoFechada", zap.String("sessao_id", event.SessaoID), zap.Int64("total", payload.TotalCentavos))
	r.broadcaster.BroadcastSessao(event.SessaoID, realtime.Frame{
		Tipo:  realtime.FrameSessaoEncerrada,
		Dados: map[string]any{"total_centavos": payload.TotalCentavos},
	})
	r.broadcaster.BroadcastTodos(realtime.Frame{
		Tipo:  realtime.FrameMesaLiberada,
		Dados: map[string]any{"nomeMesa": payload.NomeMesa},
	})
	return nil
}

func (r *RealtimeRelay) handleContaAtualizada(ctx context.Context, event events.Event) error {
	if event.SessaoID == "" {
		return nil
	}
	r.logger.Info("ContaAtualizada", zap.String("sessao_id", event.SessaoID), zap.String("evento", string(event.Type)))
	r.broadcaster.BroadcastSessao(event.SessaoID, realtime.Frame{Tipo: realtime.FrameContaAtualizada})
	return nil
}
