package domain

import "time"

// Mesa is a physical table terminal that customers order from.
// NomeUsuario/SenhaHash are the device login credentials provisioned
// by a manager.
type Mesa struct {
	ID          string
	Nome        string
	NomeUsuario string
	SenhaHash   string
	Ativa       bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
