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

// Verificação em tempo de compilação de que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
)

// AnthropicService adaptador alternativo de LLMService usando a Messages API
// da Anthropic. Usa net/http da biblioteca padrão; não requer o SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService constrói o adaptador.
// model costuma ser "claude-3-5-haiku-20241022".
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estruturas internas do protocolo Anthropic Messages API ───────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementação do porto ────────────────────────────────────────────────────

// AnalyzeLegalText envia o texto ao Claude e devolve o parecer em Markdown.
func (s *AnthropicService) AnalyzeLegalText(ctx context.Context, text string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY não configurada")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 2048,
		System:    analysisPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: text},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: criar HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

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
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic %s: %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d", resp.StatusCode)
	}

	var antResp anthropicResponse
	if err := json.Unmarshal(rawBody, &antResp); err != nil {
		return "", fmt.Errorf("AI: desserializar resposta Anthropic: %w", err)
	}

	var sb strings.Builder
	for _, block := range antResp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("AI: Anthropic devolveu resposta vazia")
	}
	return out, nil
}
