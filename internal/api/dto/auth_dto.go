package dto

import (
	"time"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
)

// LoginRequest payload for staff login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginClienteRequest payload for table-device login.
type LoginClienteRequest struct {
	NomeUsuario string `json:"nome_usuario"`
	Senha       string `json:"senha"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token    string    `json:"token"`
	ExpiraEm time.Time `json:"expira_em"`
}

// UsuarioResponse is the staff account projection returned on login.
type UsuarioResponse struct {
	ID    string             `json:"id"`
	Nome  string             `json:"nome"`
	Email string             `json:"email"`
	Nivel domain.NivelAcesso `json:"nivel_acesso"`
}

// MesaResponse is the table projection returned on login.
type MesaResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// CriarUsuarioRequest payload for provisioning staff.
type CriarUsuarioRequest struct {
	Nome  string             `json:"nome"`
	Email string             `json:"email"`
	Senha string             `json:"senha"`
	Nivel domain.NivelAcesso `json:"nivel_acesso"`
}

// CriarMesaRequest payload for provisioning a table device.
type CriarMesaRequest struct {
	Nome        string `json:"nome"`
	NomeUsuario string `json:"nome_usuario"`
	Senha       string `json:"senha"`
}
