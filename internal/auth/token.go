// internal/auth/token.go
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token: identidade, cargo e flag de admin.
type Claims struct {
	UserID  uint   `json:"userId"`
	Cargo   string `json:"cargo"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Tempo de vida do access token.
const AccessTTL = 8 * time.Hour

func segredo() []byte {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		s = "segredo-de-desenvolvimento"
	}
	return []byte(s)
}

// GerarToken emite um JWT HS256 para o usuário autenticado.
func GerarToken(userID uint, cargo string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  userID,
		Cargo:   cargo,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(segredo())
}

// ParseAndValidate valida assinatura e expiração e devolve as claims.
func ParseAndValidate(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return segredo(), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token inválido")
	}

	c, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims inválidas")
	}
	if c.ExpiresAt == nil || time.Now().After(c.ExpiresAt.Time) {
		return nil, errors.New("token expirado")
	}
	return c, nil
}
