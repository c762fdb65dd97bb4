package dto

import "time"

// CreateContactRequest entrada pública do formulário de contato do site.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Message string `json:"message" validate:"required,min=1"`
}

// ContactResponse saída de uma mensagem de contato.
type ContactResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}
