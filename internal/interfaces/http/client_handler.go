package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/application/usecase"
	"github.com/msantana/advocacia-pro/internal/domain"
)

// ClientHandler CRUD de clientes do escritório.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler constrói o handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateClientRequest  true  "dados do cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return clientError(c, err, "erro ao cadastrar cliente")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes em ordem alfabética
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao listar clientes"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar cliente
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id do cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return clientError(c, err, "erro ao buscar cliente")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "id do cliente"
// @Param        body  body  dto.UpdateClientRequest  true  "dados do cliente"
// @Success      200   {object}  dto.ClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return clientError(c, err, "erro ao atualizar cliente")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover cliente (apenas main_admin)
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id do cliente"
// @Success      204  "removido"
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetRole(c), c.Params("id")); err != nil {
		return clientError(c, err, "erro ao remover cliente")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// clientError mapeia os erros de domínio do CRUD para HTTP.
func clientError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro não encontrado"})
	case errors.Is(err, domain.ErrPermissaoNegada):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem permissão para esta operação"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: fallback})
	}
}
