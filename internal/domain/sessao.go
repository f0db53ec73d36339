package domain

import "time"

// Sessao is one customer visit at one table, from intake to closure.
// At most one Sessao per mesa may have FechadaEm == nil; the sessoes
// table enforces this with a partial unique index.
type Sessao struct {
	ID              string
	MesaID          string
	NomeCliente     string
	TelefoneCliente *string
	AbertaEm        time.Time
	FechadaEm       *time.Time
	TotalCentavos   *int64
}

// Aberta reports whether the session is still open.
func (s *Sessao) Aberta() bool {
	return s != nil && s.FechadaEm == nil
}
