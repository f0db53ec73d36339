package domain

import "time"

// Pedido is a single order line placed during a session. Cancelled
// lines stay visible on the account but contribute nothing to totals.
type Pedido struct {
	ID                    string
	SessaoID              string
	ItemID                string
	NomeItem              string
	Quantidade            int
	PrecoUnitarioCentavos int64
	Observacao            *string
	Cancelado             bool
	CreatedAt             time.Time
}

// Subtotal returns the line value in centavos, zero when cancelled.
func (p *Pedido) Subtotal() int64 {
	if p.Cancelado {
		return 0
	}
	return int64(p.Quantidade) * p.PrecoUnitarioCentavos
}
