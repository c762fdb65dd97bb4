package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/pkg/jwt"
)

// Locals keys para UID, Email e Role no Fiber.
const (
	LocalUID   = "uid"
	LocalEmail = "email"
	LocalRole  = "role"
)

// AuthMiddleware valida o Bearer Token JWT e carrega UID, Email e Role em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		uid, email, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUID, uid)
		c.Locals(LocalEmail, email)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza apenas os papéis listados. Deve vir depois do
// AuthMiddleware; sem role nos locals devolve 401, role não listado 403.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "papel ausente no token"})
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem permissão para esta operação"})
	}
}

// GetUID devolve o UID do contexto (depois do middleware de auth).
func GetUID(c *fiber.Ctx) string {
	v := c.Locals(LocalUID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail devolve o email do contexto.
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devolve o papel do contexto.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
