package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/msantana/advocacia-pro/internal/application/ports"
)

// Verificação em tempo de compilação de que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// analysisPrompt define o papel do modelo. A resposta sai em Markdown e é
	// repassada ao painel sem pós-processamento.
	analysisPrompt = `Como um assistente jurídico especialista, analise o seguinte texto e forneça um resumo conciso dos pontos chave, identifique possíveis riscos ou oportunidades e sugira os próximos passos recomendados. Formate a resposta em Markdown.`
)

// GeminiService adaptador que implementa LLMService chamando a API REST do
// Google Gemini. Usa apenas net/http; não precisa do SDK oficial.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService constrói o adaptador. model costuma ser "gemini-2.0-flash".
// Com apiKey vazia as chamadas devolvem erro descritivo em vez de panic.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 25 * time.Second, // timeout de rede; o use case ainda impõe WithTimeout
		},
	}
}

// ── Estruturas internas da API do Gemini ──────────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementação do porto ────────────────────────────────────────────────────

// AnalyzeLegalText envia o texto ao Gemini e devolve o parecer em Markdown.
func (s *GeminiService) AnalyzeLegalText(ctx context.Context, text string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY não configurada")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: analysisPrompt}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: text}},
			},
		},
		GenerationConfig: genConfig{
			Temperature:     0.3,
			MaxOutputTokens: 2048,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: criar HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout ou cancelamento: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini erro %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: desserializar resposta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolveu resposta vazia")
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
