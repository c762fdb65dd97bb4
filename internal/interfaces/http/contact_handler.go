package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/application/usecase"
	"github.com/msantana/advocacia-pro/internal/domain"
)

// ContactHandler mensagens do formulário de contato do site.
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler constrói o handler.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Submit godoc
// @Summary      Enviar mensagem de contato
// @Description  Única escrita pública da API; alimenta a caixa de entrada do painel.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContactRequest  true  "name, email, phone, message"
// @Success      201   {object}  dto.ContactResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contacts [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var in dto.CreateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email e message são obrigatórios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao gravar mensagem"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mensagens recebidas
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ContactResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/contacts [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao listar mensagens"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover mensagem tratada
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id da mensagem"
// @Success      204  "removida"
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/contacts/{id} [delete]
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao remover mensagem"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
