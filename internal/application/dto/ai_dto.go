package dto

// AIAnalysisRequest entrada para análise de texto jurídico.
type AIAnalysisRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// AIAnalysisResponse saída da análise, em Markdown.
type AIAnalysisResponse struct {
	Analysis string `json:"analysis"`
}
