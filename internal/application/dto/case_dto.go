package dto

import "time"

// CreateCaseRequest entrada para abrir um processo. O nome do cliente é
// resolvido no use case a partir do clientId.
type CreateCaseRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=300"`
	Description string `json:"description" validate:"omitempty"`
	ClientID    string `json:"clientId" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=Ativo Pendente Arquivado"`
	Amount      string `json:"amount" validate:"omitempty"`
}

// UpdateCaseRequest entrada para atualizar um processo.
type UpdateCaseRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=300"`
	Description string `json:"description" validate:"omitempty"`
	Status      string `json:"status" validate:"required,oneof=Ativo Pendente Arquivado"`
	Amount      string `json:"amount" validate:"omitempty"`
}

// CaseResponse saída de um processo. Amount é string decimal para não perder
// precisão no JSON.
type CaseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ClientID    string    `json:"clientId"`
	ClientName  string    `json:"clientName"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
