package entity

import "time"

// Status válidos para Client.
const (
	ClientPotencial = "Potencial"
	ClientAtivo     = "Ativo"
	ClientInativo   = "Inativo"
)

// ValidClientStatus informa se o status é um dos reconhecidos.
func ValidClientStatus(s string) bool {
	return s == ClientPotencial || s == ClientAtivo || s == ClientInativo
}

// Client é um cliente do escritório. Exclusão restrita ao main_admin.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Status    string // Potencial, Ativo, Inativo
	CreatedAt time.Time
	UpdatedAt time.Time
}
