package dto

import (
	"time"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
	"github.com/Lucasdx7/Sistema-sub000/internal/service"
)

// IniciarSessaoRequest is the customer intake submitted by the table.
type IniciarSessaoRequest struct {
	NomeCliente     string  `json:"nome_cliente"`
	TelefoneCliente *string `json:"telefone_cliente"`
}

// SessaoResponse projects a session.
type SessaoResponse struct {
	SessaoID      string     `json:"sessao_id"`
	MesaID        string     `json:"mesa_id"`
	NomeCliente   string     `json:"nome_cliente"`
	AbertaEm      time.Time  `json:"aberta_em"`
	FechadaEm     *time.Time `json:"fechada_em,omitempty"`
	TotalCentavos *int64     `json:"total_centavos,omitempty"`
}

// NewSessaoResponse maps the domain model.
func NewSessaoResponse(s *domain.Sessao) SessaoResponse {
	return SessaoResponse{
		SessaoID:      s.ID,
		MesaID:        s.MesaID,
		NomeCliente:   s.NomeCliente,
		AbertaEm:      s.AbertaEm,
		FechadaEm:     s.FechadaEm,
		TotalCentavos: s.TotalCentavos,
	}
}

// LancarPedidoRequest payload for placing an order line.
type LancarPedidoRequest struct {
	ItemID     string  `json:"item_id"`
	Quantidade int     `json:"quantidade"`
	Observacao *string `json:"observacao"`
}

// PedidoResponse projects an order line. Cancelled lines stay visible
// with subtotal zero.
type PedidoResponse struct {
	ID                    string  `json:"id"`
	NomeItem              string  `json:"nome_item"`
	Quantidade            int     `json:"quantidade"`
	PrecoUnitarioCentavos int64   `json:"preco_unitario_centavos"`
	SubtotalCentavos      int64   `json:"subtotal_centavos"`
	Observacao            *string `json:"observacao,omitempty"`
	Cancelado             bool    `json:"cancelado"`
}

// NewPedidoResponse maps the domain model.
func NewPedidoResponse(p *domain.Pedido) PedidoResponse {
	return PedidoResponse{
		ID:                    p.ID,
		NomeItem:              p.NomeItem,
		Quantidade:            p.Quantidade,
		PrecoUnitarioCentavos: p.PrecoUnitarioCentavos,
		SubtotalCentavos:      p.Subtotal(),
		Observacao:            p.Observacao,
		Cancelado:             p.Cancelado,
	}
}

// ContaResponse is the itemized account for a session.
type ContaResponse struct {
	Sessao        SessaoResponse   `json:"sessao"`
	Pedidos       []PedidoResponse `json:"pedidos"`
	TotalCentavos int64            `json:"total_centavos"`
}

// NewContaResponse maps the service aggregate.
func NewContaResponse(conta *service.ContaSessao) ContaResponse {
	pedidos := make([]PedidoResponse, 0, len(conta.Pedidos))
	for i := range conta.Pedidos {
		pedidos = append(pedidos, NewPedidoResponse(&conta.Pedidos[i]))
	}
	return ContaResponse{
		Sessao:        NewSessaoResponse(conta.Sessao),
		Pedidos:       pedidos,
		TotalCentavos: conta.TotalCentavos,
	}
}
