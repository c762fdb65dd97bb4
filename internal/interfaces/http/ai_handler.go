package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/application/usecase"
	"github.com/msantana/advocacia-pro/internal/domain"
)

// AIHandler análise de textos jurídicos assistida por IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler constrói o handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Analyze godoc
// @Summary      Analisar texto jurídico
// @Description  Devolve resumo, riscos/oportunidades e próximos passos em Markdown.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AIAnalysisRequest  true  "texto a analisar"
// @Success      200   {object}  dto.AIAnalysisResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/ai/analyze [post]
func (h *AIHandler) Analyze(c *fiber.Ctx) error {
	var in dto.AIAnalysisRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Analyze(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "text é obrigatório"})
		}
		// Falha do provedor externo, não nossa.
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: "serviço de análise indisponível"})
	}
	return c.JSON(out)
}
