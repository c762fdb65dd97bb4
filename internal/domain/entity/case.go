package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos para Case.
const (
	CaseAtivo     = "Ativo"
	CasePendente  = "Pendente"
	CaseArquivado = "Arquivado"
)

// ValidCaseStatus informa se o status é um dos reconhecidos.
func ValidCaseStatus(s string) bool {
	return s == CaseAtivo || s == CasePendente || s == CaseArquivado
}

// Case é um processo jurídico vinculado a um Client.
// ClientName é uma cópia desnormalizada do nome do cliente no momento do
// salvamento; renomear o cliente depois NÃO atualiza processos já criados.
type Case struct {
	ID          string
	Title       string
	Description string
	ClientID    string
	ClientName  string
	Status      string          // Ativo, Pendente, Arquivado
	Amount      decimal.Decimal // valor da causa; zero quando não informado
	CreatedAt   time.Time       // definido uma única vez
	UpdatedAt   time.Time
}
