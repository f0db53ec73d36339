package events

import (
	"time"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessaoAberta       EventType = "sessao_aberta"
	EventSessaoFechada      EventType = "sessao_fechada"
	EventPedidoLancado      EventType = "pedido_lancado"
	EventPedidoCancelado    EventType = "pedido_cancelado"
	EventCardapioAtualizado EventType = "cardapio_atualizado"
	EventGarcomChamado      EventType = "garcom_chamado"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Type      domain.PrincipalKind `json:"type"`
	MesaID    *string              `json:"mesa_id,omitempty"`
	UsuarioID *string              `json:"usuario_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessaoID  string      `json:"sessao_id,omitempty"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SessaoAbertaPayload payload.
type SessaoAbertaPayload struct {
	MesaID      string `json:"mesa_id"`
	NomeMesa    string `json:"nome_mesa"`
	NomeCliente string `json:"nome_cliente"`
}

// SessaoFechadaPayload payload.
type SessaoFechadaPayload struct {
	MesaID        string `json:"mesa_id"`
	NomeMesa      string `json:"nome_mesa"`
	TotalCentavos int64  `json:"total_centavos"`
}

// PedidoPayload payload for placed and cancelled order lines.
type PedidoPayload struct {
	PedidoID   string `json:"pedido_id"`
	NomeItem   string `json:"nome_item"`
	Quantidade int    `json:"quantidade"`
}

// CardapioAtualizadoPayload payload.
type CardapioAtualizadoPayload struct {
	ItemID string `json:"item_id,omitempty"`
	Acao   string `json:"acao"`
}

// GarcomChamadoPayload payload.
type GarcomChamadoPayload struct {
	MesaID   string `json:"mesa_id"`
	NomeMesa string `json:"nome_mesa"`
}
