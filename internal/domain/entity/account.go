package entity

import "time"

// Papéis válidos para Account e Invitation.
const (
	RoleMainAdmin      = "main_admin"
	RoleSecondaryAdmin = "secondary_admin"
)

// ValidRole informa se o papel é um dos dois reconhecidos.
func ValidRole(role string) bool {
	return role == RoleMainAdmin || role == RoleSecondaryAdmin
}

// Account é a fonte de verdade de autorização: mapeia uma identidade
// autenticada (uid do provedor) para um papel. Criada pelo protocolo de
// registro; nunca atualizada depois disso.
type Account struct {
	UID       string
	Email     string
	Role      string // main_admin, secondary_admin
	CreatedAt time.Time
}

// Invitation é uma concessão de autorização pendente, chaveada pelo email do
// convidado. Criada por um main_admin; consumida (apagada) pelo registro.
type Invitation struct {
	Email     string
	Role      string
	CreatedAt time.Time
}
