package domain

import "time"

// PrincipalKind differentiates table-device tokens from staff tokens.
// The value travels inside the JWT as the "tipo" claim.
type PrincipalKind string

const (
	PrincipalMesa    PrincipalKind = "mesa"
	PrincipalUsuario PrincipalKind = "usuario"
)

// Token represents issued authentication token metadata.
type Token struct {
	SubjectID string
	Kind      PrincipalKind
	IssuedAt  time.Time
	ExpiresAt time.Time
}
