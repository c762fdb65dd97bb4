package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão JWT mais os campos próprios da aplicação.
// Role vai no token para que o middleware RBAC decida sem consultar o registro de contas.
type Claims struct {
	jwt.RegisteredClaims
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  string `json:"role"` // "main_admin" | "secondary_admin"
}

// Generate gera um token JWT assinado que inclui uid, email e role.
func Generate(secret, uid, email, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UID:   uid,
		Email: email,
		Role:  role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve uid, email e role.
// Retorna erro se o token for inválido, expirado ou com assinatura incorreta.
func Parse(secret, tokenString string) (uid, email, role string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.UID, claims.Email, claims.Role, nil
}
