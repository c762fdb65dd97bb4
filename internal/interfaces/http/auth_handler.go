package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/msantana/advocacia-pro/internal/application/auth"
	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/domain"
)

// AuthHandler cadastro, login, logout e sessão.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Cadastrar administrador
// @Description  Primeiro cadastro vira main_admin; os demais exigem convite pendente.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e password são obrigatórios"})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrRegistroNaoAutorizado) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "REGISTRATION_NOT_AUTHORIZED", Message: "cadastro não autorizado; peça um convite a um administrador"})
		}
		if errors.Is(err, domain.ErrCredencial) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CREDENTIAL", Message: "email inválido, já em uso ou senha com menos de 6 caracteres"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao cadastrar"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Entrar
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e password são obrigatórios"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		// Credencial errada e conta sem registro respondem igual para não
		// vazar quais emails existem.
		if auth.IsCredentialErr(err) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao entrar"})
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Sair
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  "sessão encerrada"
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Context(), GetUID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao sair"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Session godoc
// @Summary      Sessão atual
// @Description  Restaura o estado do painel a partir de um token ainda válido.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	out, err := h.uc.CurrentAccount(c.Context(), GetUID(c))
	if err != nil {
		if errors.Is(err, domain.ErrContaSemRegistro) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sessão sem conta registrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao consultar sessão"})
	}
	return c.JSON(out)
}
