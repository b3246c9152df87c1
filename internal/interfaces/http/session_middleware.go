package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Financeiro-api/internal/application/dto"
	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
)

// LocalSession clave de c.Locals donde queda la sesión resuelta.
const LocalSession = "session"

// SessionResolver traduce el valor de la cookie a una identidad. Lo implementa
// infrastructure/session (JWT); el uso de interfaz permite fakes en tests.
type SessionResolver interface {
	Resolve(cookieValue string) (*entity.Session, error)
}

// SessionMiddleware lee la cookie de sesión y deja la identidad en c.Locals.
//   - 401 si la cookie no existe o no se puede resolver.
//   - La validación del tenant la hace el caso de uso (400 si falta).
func SessionMiddleware(cookieName string, resolver SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(cookieName)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Usuário não autenticado", Code: "UNAUTHENTICATED",
			})
		}
		session, err := resolver.Resolve(raw)
		if err != nil || session == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Sessão inválida ou expirada", Code: "INVALID_SESSION",
			})
		}
		c.Locals(LocalSession, session)
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después de SessionMiddleware) o nil.
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}
