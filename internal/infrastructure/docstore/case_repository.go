package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/msantana/advocacia-pro/internal/domain/entity"
	"github.com/msantana/advocacia-pro/internal/domain/repository"
	"github.com/msantana/advocacia-pro/internal/store"
)

var _ repository.CaseRepository = (*CaseRepo)(nil)

// CaseRepo processos sobre a coleção cases.
type CaseRepo struct {
	st store.Store
}

// NewCaseRepository constrói o adaptador.
func NewCaseRepository(st store.Store) *CaseRepo {
	return &CaseRepo{st: st}
}

// Create persiste o processo e preenche o ID gerado. createdAt é definido aqui
// uma única vez e nunca regravado pelo Update.
func (r *CaseRepo) Create(ctx context.Context, cs *entity.Case) error {
	now := time.Now()
	if cs.CreatedAt.IsZero() {
		cs.CreatedAt = now
	}
	cs.UpdatedAt = now
	if cs.ID == "" {
		cs.ID = uuid.New().String()
	}
	err := r.st.Set(ctx, store.ColCases, cs.ID, map[string]any{
		"title":       cs.Title,
		"description": cs.Description,
		"clientId":    cs.ClientID,
		"clientName":  cs.ClientName,
		"status":      cs.Status,
		"amount":      cs.Amount.String(),
		"createdAt":   stamp(cs.CreatedAt),
		"updatedAt":   stamp(cs.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("criar processo: %w", err)
	}
	return nil
}

// GetByID devolve o processo ou (nil, nil) se ausente.
func (r *CaseRepo) GetByID(ctx context.Context, id string) (*entity.Case, error) {
	doc, err := r.st.Get(ctx, store.ColCases, id)
	if err != nil {
		return nil, fmt.Errorf("buscar processo: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return caseFromDoc(*doc), nil
}

// Update regrava os campos mutáveis; createdAt e clientName ficam como gravados
// (a desnormalização do nome não é ressincronizada).
func (r *CaseRepo) Update(ctx context.Context, cs *entity.Case) error {
	cs.UpdatedAt = time.Now()
	err := r.st.Update(ctx, store.ColCases, cs.ID, map[string]any{
		"title":       cs.Title,
		"description": cs.Description,
		"status":      cs.Status,
		"amount":      cs.Amount.String(),
		"updatedAt":   stamp(cs.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("atualizar processo: %w", err)
	}
	return nil
}

// Delete remove o processo.
func (r *CaseRepo) Delete(ctx context.Context, id string) error {
	if err := r.st.Delete(ctx, store.ColCases, id); err != nil {
		return fmt.Errorf("remover processo: %w", err)
	}
	return nil
}

// List devolve os processos ordenados por createdAt decrescente.
func (r *CaseRepo) List(ctx context.Context) ([]*entity.Case, error) {
	snap, err := r.st.Query(ctx, CasesQuery())
	if err != nil {
		return nil, fmt.Errorf("listar processos: %w", err)
	}
	out := make([]*entity.Case, 0, len(snap))
	for _, doc := range snap {
		out = append(out, caseFromDoc(doc))
	}
	return out, nil
}

// CasesQuery é a consulta canônica de processos (também usada pelo realtime).
func CasesQuery() store.Query {
	return store.Query{
		Collection: store.ColCases,
		OrderBy:    &store.Order{Field: "createdAt", Desc: true},
	}
}

func caseFromDoc(doc store.Document) *entity.Case {
	return &entity.Case{
		ID:          doc.ID,
		Title:       str(doc.Data, "title"),
		Description: str(doc.Data, "description"),
		ClientID:    str(doc.Data, "clientId"),
		ClientName:  str(doc.Data, "clientName"),
		Status:      str(doc.Data, "status"),
		Amount:      dec(doc.Data, "amount"),
		CreatedAt:   when(doc.Data, "createdAt"),
		UpdatedAt:   when(doc.Data, "updatedAt"),
	}
}
