package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/application/ports"
	"github.com/msantana/advocacia-pro/internal/domain"
)

// AIUseCase orquestra a análise de textos jurídicos assistida por IA.
// Aplica um timeout de 30 segundos em cada chamada ao LLM para que latências
// externas não prendam as goroutines do servidor.
type AIUseCase struct {
	llm ports.LLMService
}

// NewAIUseCase constrói o caso de uso injetando o porto LLMService.
func NewAIUseCase(llm ports.LLMService) *AIUseCase {
	return &AIUseCase{llm: llm}
}

// Analyze valida a entrada e delega ao serviço de LLM.
func (uc *AIUseCase) Analyze(ctx context.Context, req dto.AIAnalysisRequest) (*dto.AIAnalysisResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, domain.ErrEntradaInvalida
	}

	// Análises de documentos longos podem demorar vários segundos.
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	analysis, err := uc.llm.AnalyzeLegalText(ctx, req.Text)
	if err != nil {
		return nil, fmt.Errorf("análise IA: %w", err)
	}

	return &dto.AIAnalysisResponse{Analysis: analysis}, nil
}
