package jwt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims de la cookie de sesión. ID_EMPRESA conserva el nombre que usa el resto del portal.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Name      string `json:"name,omitempty"`
	IDEmpresa Empresa `json:"ID_EMPRESA,omitempty"`
}

// Empresa claim ID_EMPRESA. El portal lo emite como número; también se acepta texto.
// Cualquier otro literal se conserva crudo y la validación del tenant lo rechaza.
type Empresa string

func (e Empresa) String() string { return string(e) }

// MarshalJSON emite número cuando el valor es entero, como el portal.
func (e Empresa) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(e), 10, 64); err == nil {
		return []byte(e), nil
	}
	return json.Marshal(string(e))
}

func (e *Empresa) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*e = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*e = Empresa(s)
	default:
		*e = Empresa(b)
	}
	return nil
}

// Generate genera un token firmado (HS256) con userID, empresa y nombre.
func Generate(secret, userID, idEmpresa, name, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    userID,
		Name:      name,
		IDEmpresa: Empresa(idEmpresa),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
