// internal/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token de acesso. O sistema tem uma conta única (o corretor),
// então basta o usuário no subject.
type Claims struct {
	Usuario string `json:"usuario"`
	jwt.RegisteredClaims
}

// Tempo de vida do access token.
const AccessTTL = 8 * time.Hour

const issuer = "api-corretora"

// ErrTokenInvalido cobre assinatura errada, emissor errado e expiração.
var ErrTokenInvalido = errors.New("token inválido")

func segredo() ([]byte, error) {
	s := os.Getenv("AUTH_JWT_SECRET")
	if s == "" {
		return nil, errors.New("AUTH_JWT_SECRET não configurado")
	}
	return []byte(s), nil
}

// GerarToken emite um JWT HS256 para a conta informada.
func GerarToken(usuario string) (string, error) {
	chave, err := segredo()
	if err != nil {
		return "", err
	}

	agora := time.Now()
	claims := &Claims{
		Usuario: usuario,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   usuario,
			ExpiresAt: jwt.NewNumericDate(agora.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(agora),
			NotBefore: jwt.NewNumericDate(agora.Add(-1 * time.Minute)),
			ID:        fmt.Sprintf("%s-%d", usuario, agora.UnixNano()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(chave)
}

// ValidarToken confere assinatura, emissor e validade e devolve as claims.
func ValidarToken(bruto string) (*Claims, error) {
	chave, err := segredo()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(bruto, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return chave, nil
	}, jwt.WithIssuer(issuer))
	if err != nil || !tok.Valid {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}
