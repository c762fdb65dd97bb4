package ports

import "context"

// LLMService define o porto de saída para os serviços de inteligência
// artificial. Qualquer adaptador (Gemini, Anthropic, mock) deve implementar
// esta interface; a camada de aplicação só conhece este contrato, nunca a
// implementação concreta.
type LLMService interface {
	// AnalyzeLegalText analisa um texto jurídico e devolve um parecer em
	// Markdown com resumo, riscos, oportunidades e próximos passos.
	// O contexto deve carregar um timeout para evitar bloqueios em chamadas
	// externas.
	AnalyzeLegalText(ctx context.Context, text string) (string, error)
}
