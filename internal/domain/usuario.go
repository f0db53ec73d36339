package domain

import "time"

// NivelAcesso enumerates staff access levels.
type NivelAcesso string

const (
	NivelGerente     NivelAcesso = "GERENTE"
	NivelFuncionario NivelAcesso = "FUNCIONARIO"
)

// Usuario models a restaurant employee with console access.
type Usuario struct {
	ID        string
	Nome      string
	Email     string
	SenhaHash string
	Nivel     NivelAcesso
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
