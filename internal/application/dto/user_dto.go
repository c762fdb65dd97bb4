package dto

import "time"

// InviteRequest entrada para convidar um novo administrador.
type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=main_admin secondary_admin"`
}

// AccountResponse saída de uma conta administrativa registrada.
type AccountResponse struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// InvitationResponse saída de um convite pendente.
type InvitationResponse struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// TeamResponse contas registradas mais convites ainda não consumidos.
type TeamResponse struct {
	Accounts    []AccountResponse    `json:"accounts"`
	Invitations []InvitationResponse `json:"invitations"`
}
