package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/msantana/advocacia-pro/internal/domain/entity"
	"github.com/msantana/advocacia-pro/internal/domain/repository"
	"github.com/msantana/advocacia-pro/internal/store"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo registro de contas sobre a coleção users (documento chaveado pelo uid).
type AccountRepo struct {
	st store.Store
}

// NewAccountRepository constrói o adaptador.
func NewAccountRepository(st store.Store) *AccountRepo {
	return &AccountRepo{st: st}
}

// Create grava o registro da conta. A conta nunca é atualizada depois de criada.
func (r *AccountRepo) Create(ctx context.Context, acc *entity.Account) error {
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = time.Now()
	}
	err := r.st.Set(ctx, store.ColUsers, acc.UID, map[string]any{
		"email":     acc.Email,
		"role":      acc.Role,
		"createdAt": stamp(acc.CreatedAt),
	})
	if err != nil {
		return fmt.Errorf("criar conta: %w", err)
	}
	return nil
}

// GetByUID devolve a conta ou (nil, nil) se ausente.
func (r *AccountRepo) GetByUID(ctx context.Context, uid string) (*entity.Account, error) {
	doc, err := r.st.Get(ctx, store.ColUsers, uid)
	if err != nil {
		return nil, fmt.Errorf("buscar conta por uid: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return accountFromDoc(*doc), nil
}

// GetByEmail devolve a conta ou (nil, nil). O registro é chaveado por uid,
// então isto é uma varredura filtrada, não um lookup por chave primária.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	snap, err := r.st.Query(ctx, store.Query{
		Collection: store.ColUsers,
		Filters:    []store.Filter{{Field: "email", Op: store.OpEq, Value: email}},
	})
	if err != nil {
		return nil, fmt.Errorf("buscar conta por email: %w", err)
	}
	if len(snap) == 0 {
		return nil, nil
	}
	return accountFromDoc(snap[0]), nil
}

// Any informa se o registro tem alguma conta (detecção do caso bootstrap).
func (r *AccountRepo) Any(ctx context.Context) (bool, error) {
	snap, err := r.st.Query(ctx, store.Query{Collection: store.ColUsers})
	if err != nil {
		return false, fmt.Errorf("verificar registro de contas: %w", err)
	}
	return len(snap) > 0, nil
}

// List devolve todas as contas.
func (r *AccountRepo) List(ctx context.Context) ([]*entity.Account, error) {
	snap, err := r.st.Query(ctx, store.Query{Collection: store.ColUsers})
	if err != nil {
		return nil, fmt.Errorf("listar contas: %w", err)
	}
	out := make([]*entity.Account, 0, len(snap))
	for _, doc := range snap {
		out = append(out, accountFromDoc(doc))
	}
	return out, nil
}

func accountFromDoc(doc store.Document) *entity.Account {
	return &entity.Account{
		UID:       doc.ID,
		Email:     str(doc.Data, "email"),
		Role:      str(doc.Data, "role"),
		CreatedAt: when(doc.Data, "createdAt"),
	}
}
