package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-console/internal/application/dto"
	"github.com/jhoicas/inventory-console/internal/domain/entity"
	"github.com/jhoicas/inventory-console/internal/domain/repository"
)

// Locals keys usadas por los middlewares.
const (
	LocalSession   = "session"
	LocalToken     = "token"
	LocalRequestID = "request_id"
)

// SessionInspector valida un token y devuelve la sesión que representa.
type SessionInspector interface {
	Session(token string) (*entity.Session, error)
}

// AuthMiddleware exige el Bearer Token, lo inspecciona y deja sesión y token en c.Locals.
// El token no se reemite: los handlers lo reenvían a la API como Credentials.
func AuthMiddleware(sessions SessionInspector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		session, err := sessions.Session(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSession, session)
		c.Locals(LocalToken, tokenString)
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después del middleware de auth).
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}

// GetCredentials devuelve las credenciales a reenviar a la API remota.
func GetCredentials(c *fiber.Ctx) repository.Credentials {
	tok, _ := c.Locals(LocalToken).(string)
	return repository.Credentials{Token: tok}
}
