// Package session resuelve la cookie de sesión del portal a una identidad.
package session

import (
	"fmt"

	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Financeiro-api/pkg/jwt"
)

// JWTResolver valida la cookie como JWT HS256 firmado con el secreto compartido del portal.
type JWTResolver struct {
	secret string
}

// NewJWTResolver construye el resolver.
func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{secret: secret}
}

// Resolve devuelve la sesión. Un token sin ID_EMPRESA es válido aquí: el caso de uso lo rechaza con 400.
func (r *JWTResolver) Resolve(cookieValue string) (*entity.Session, error) {
	claims, err := pkgjwt.Parse(r.secret, cookieValue)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	return &entity.Session{
		UserID:    userID,
		Name:      claims.Name,
		IDEmpresa: claims.IDEmpresa.String(),
	}, nil
}
