package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/Lucasdx7/Sistema-sub000/internal/domain"
)

// TokenManager handles issuing and validating JWT tokens for both
// principal kinds. Table-device and staff tokens share one format and
// are told apart by the "tipo" claim.
type TokenManager struct {
	secret   []byte
	staffTTL time.Duration
	tableTTL time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, staffTTLHours, tableTTLHours int) *TokenManager {
	if staffTTLHours <= 0 {
		staffTTLHours = 24
	}
	if tableTTLHours <= 0 {
		tableTTLHours = 12
	}
	return &TokenManager{
		secret:   []byte(secret),
		staffTTL: time.Duration(staffTTLHours) * time.Hour,
		tableTTL: time.Duration(tableTTLHours) * time.Hour,
	}
}

// Claims describes the JWT payload: subject id plus the principal-kind
// discriminator.
type Claims struct {
	SubjectID string               `json:"id"`
	Kind      domain.PrincipalKind `json:"tipo"`
	jwt.RegisteredClaims
}

// Generate builds and signs a JWT for the subject, with the TTL policy
// of its principal kind.
func (tm *TokenManager) Generate(subjectID string, kind domain.PrincipalKind) (string, time.Time, error) {
	ttl := tm.staffTTL
	if kind == domain.PrincipalMesa {
		ttl = tm.tableTTL
	}

	expiresAt := time.Now().Add(ttl)
	claims := &Claims{
		SubjectID: subjectID,
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates signature and expiry and returns claims.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}

	switch claims.Kind {
	case domain.PrincipalMesa, domain.PrincipalUsuario:
	default:
		return nil, errors.New("unknown principal kind")
	}
	return claims, nil
}
