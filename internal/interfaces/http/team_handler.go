package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/application/usecase"
	"github.com/msantana/advocacia-pro/internal/domain"
)

// TeamHandler equipe administrativa: contas registradas e convites.
// Todas as rotas são restritas a main_admin no router.
type TeamHandler struct {
	teamUC       *usecase.TeamUseCase
	invitationUC *usecase.InvitationUseCase
}

// NewTeamHandler constrói o handler.
func NewTeamHandler(teamUC *usecase.TeamUseCase, invitationUC *usecase.InvitationUseCase) *TeamHandler {
	return &TeamHandler{teamUC: teamUC, invitationUC: invitationUC}
}

// List godoc
// @Summary      Listar equipe e convites pendentes
// @Tags         team
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TeamResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *TeamHandler) List(c *fiber.Ctx) error {
	out, err := h.teamUC.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao listar equipe"})
	}
	return c.JSON(out)
}

// Invite godoc
// @Summary      Convidar novo administrador
// @Description  O convite autoriza o cadastro do email com o papel indicado.
// @Tags         team
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.InviteRequest  true  "email, role"
// @Success      201   {object}  dto.InvitationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invitations [post]
func (h *TeamHandler) Invite(c *fiber.Ctx) error {
	var in dto.InviteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.invitationUC.Invite(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e role são obrigatórios"})
		case errors.Is(err, domain.ErrConviteDuplicado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVITATION_EXISTS", Message: "o email já tem um convite pendente"})
		case errors.Is(err, domain.ErrEmailJaRegistrado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_REGISTERED", Message: "o email já tem conta registrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao convidar"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Revoke godoc
// @Summary      Cancelar convite pendente
// @Tags         team
// @Produce      json
// @Security     BearerAuth
// @Param        email  path  string  true  "email convidado"
// @Success      204  "cancelado"
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/invitations/{email} [delete]
func (h *TeamHandler) Revoke(c *fiber.Ctx) error {
	if err := h.invitationUC.Revoke(c.Context(), c.Params("email")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao cancelar convite"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
