// Package docstore adapta os portos de repositório do domínio para o armazém
// de documentos (store.Store). Cada repositório conhece a própria coleção e o
// mapeamento entidade ↔ documento; os nomes de campo seguem o formato dos
// documentos (camelCase), que é também o formato exposto pela API.
package docstore

import (
	"time"

	"github.com/shopspring/decimal"
)

// str lê um campo string do documento ("" se ausente ou de outro tipo).
func str(m map[string]any, k string) string {
	s, _ := m[k].(string)
	return s
}

// when lê um campo de tempo RFC3339 (zero se ausente ou malformado).
func when(m map[string]any, k string) time.Time {
	s, ok := m[k].(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// stamp serializa um tempo em RFC3339 UTC. Precisão de segundo é suficiente e
// mantém a ordenação lexicográfica igual à cronológica.
func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// dec lê um campo decimal persistido como string (ou número JSON legado).
func dec(m map[string]any, k string) decimal.Decimal {
	switch v := m[k].(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(v)
	default:
		return decimal.Zero
	}
}
