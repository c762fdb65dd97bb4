package dto

import "time"

// CreateClientRequest entrada para cadastrar um cliente.
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Address string `json:"address" validate:"omitempty,max=300"`
	Status  string `json:"status" validate:"required,oneof=Potencial Ativo Inativo"`
}

// UpdateClientRequest entrada para atualizar um cliente.
type UpdateClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Address string `json:"address" validate:"omitempty,max=300"`
	Status  string `json:"status" validate:"required,oneof=Potencial Ativo Inativo"`
}

// ClientResponse saída de um cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
