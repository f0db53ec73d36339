package realtime

import (
	"sync"

	"go.uber.org/zap"
)

// Frame is the JSON message pushed to connected clients. Dados fields
// are flattened next to "type" during marshalling so browsers receive
// `{"type": "...", ...}`.
type Frame struct {
	Tipo  string
	Dados map[string]any
}

// MarshalMap returns the flat wire representation of the frame.
func (f Frame) MarshalMap() map[string]any {
	out := make(map[string]any, len(f.Dados)+1)
	for k, v := range f.Dados {
		out[k] = v
	}
	out["type"] = f.Tipo
	return out
}

// Frame types recognized by browser clients.
const (
	FrameCardapioAtualizado = "CARDAPIO_ATUALIZADO"
	FrameChamadoGarcom      = "CHAMADO_GARCOM"
	FrameContaAtualizada    = "CONTA_ATUALIZADA"
	FrameSessaoEncerrada    = "SESSAO_ENCERRADA"
	FrameMesaLiberada       = "MESA_LIBERADA"
)

// Sink is the transport half of a connected client. Send must be safe
// to call from broadcasting goroutines and should fail fast when the
// underlying connection is gone.
type Sink interface {
	Send(frame Frame) error
	Close() error
}

// Cliente is one connected observer, optionally bound to a session for
// session-scoped delivery.
type Cliente struct {
	sink     Sink
	sessaoID *string
}

// NewCliente wraps a transport sink. sessaoID may be nil for staff
// observers that only care about restaurant-wide frames.
func NewCliente(sink Sink, sessaoID *string) *Cliente {
	return &Cliente{sink: sink, sessaoID: sessaoID}
}

// Broadcaster fans out frames to connected clients. Delivery is
// best-effort and at-most-once: a client whose sink fails is dropped
// and must refetch state on reconnect.
type Broadcaster struct {
	mu       sync.Mutex
	clientes map[*Cliente]struct{}
	logger   *zap.Logger
}

// NewBroadcaster creates an empty registry.
func NewBroadcaster(logger *zap.Logger) *Broadcaster {
	return &Broadcaster{
		clientes: make(map[*Cliente]struct{}),
		logger:   logger,
	}
}

// Conectar registers a client.
func (b *Broadcaster) Conectar(c *Cliente) {
	b.mu.Lock()
	b.clientes[c] = struct{}{}
	total := len(b.clientes)
	b.mu.Unlock()
	b.logger.Debug("cliente conectado", zap.Int("conectados", total))
}

// Desconectar removes a client and closes its sink. Idempotent.
func (b *Broadcaster) Desconectar(c *Cliente) {
	b.mu.Lock()
	_, existed := b.clientes[c]
	delete(b.clientes, c)
	b.mu.Unlock()
	if existed {
		_ = c.sink.Close()
	}
}

// BroadcastTodos delivers the frame to every connected client.
func (b *Broadcaster) BroadcastTodos(frame Frame) {
	b.deliver(frame, func(*Cliente) bool { return true })
}

// BroadcastSessao delivers only to clients bound to the given session.
func (b *Broadcaster) BroadcastSessao(sessaoID string, frame Frame) {
	b.deliver(frame, func(c *Cliente) bool {
		return c.sessaoID != nil && *c.sessaoID == sessaoID
	})
}

func (b *Broadcaster) deliver(frame Frame, match func(*Cliente) bool) {
	b.mu.Lock()
	targets := make([]*Cliente, 0, len(b.clientes))
	for c := range b.clientes {
		if match(c) {
			targets = append(targets, c)
		}
	}
	b.mu.Unlock()

	for _, c := range targets {
		if err := c.sink.Send(frame); err != nil {
			// Broken transport: drop the client, never fail the caller.
			b.logger.Debug("descartando cliente com transporte quebrado", zap.Error(err))
			b.Desconectar(c)
		}
	}
}

// Conectados returns the current observer count.
func (b *Broadcaster) Conectados() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clientes)
}
