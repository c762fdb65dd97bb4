package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/application/usecase"
)

// CaseHandler CRUD de processos.
type CaseHandler struct {
	uc *usecase.CaseUseCase
}

// NewCaseHandler constrói o handler.
func NewCaseHandler(uc *usecase.CaseUseCase) *CaseHandler {
	return &CaseHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir processo
// @Description  O clientId precisa apontar para um cliente existente; o nome do cliente é copiado para o processo.
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCaseRequest  true  "dados do processo"
// @Success      201   {object}  dto.CaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cases [post]
func (h *CaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return clientError(c, err, "erro ao abrir processo")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar processos, mais recentes primeiro
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CaseResponse
// @Router       /api/cases [get]
func (h *CaseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao listar processos"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar processo
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id do processo"
// @Success      200  {object}  dto.CaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cases/{id} [get]
func (h *CaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return clientError(c, err, "erro ao buscar processo")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar processo
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "id do processo"
// @Param        body  body  dto.UpdateCaseRequest  true  "dados do processo"
// @Success      200   {object}  dto.CaseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cases/{id} [put]
func (h *CaseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return clientError(c, err, "erro ao atualizar processo")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover processo (apenas main_admin)
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id do processo"
// @Success      204  "removido"
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/cases/{id} [delete]
func (h *CaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetRole(c), c.Params("id")); err != nil {
		return clientError(c, err, "erro ao remover processo")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
