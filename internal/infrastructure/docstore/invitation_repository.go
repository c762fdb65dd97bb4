package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/msantana/advocacia-pro/internal/domain/entity"
	"github.com/msantana/advocacia-pro/internal/domain/repository"
	"github.com/msantana/advocacia-pro/internal/store"
)

var _ repository.InvitationRepository = (*InvitationRepo)(nil)

// InvitationRepo convites pendentes sobre a coleção invitations.
// O id do documento é o próprio email do convidado, o que garante no máximo
// um convite por email.
type InvitationRepo struct {
	st store.Store
}

// NewInvitationRepository constrói o adaptador.
func NewInvitationRepository(st store.Store) *InvitationRepo {
	return &InvitationRepo{st: st}
}

// Put grava o convite (substitui se já existir; a unicidade é verificada na aplicação).
func (r *InvitationRepo) Put(ctx context.Context, inv *entity.Invitation) error {
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}
	err := r.st.Set(ctx, store.ColInvitations, inv.Email, map[string]any{
		"email":     inv.Email,
		"role":      inv.Role,
		"createdAt": stamp(inv.CreatedAt),
	})
	if err != nil {
		return fmt.Errorf("criar convite: %w", err)
	}
	return nil
}

// GetByEmail devolve o convite ou (nil, nil) se ausente.
func (r *InvitationRepo) GetByEmail(ctx context.Context, email string) (*entity.Invitation, error) {
	doc, err := r.st.Get(ctx, store.ColInvitations, email)
	if err != nil {
		return nil, fmt.Errorf("buscar convite: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return invitationFromDoc(*doc), nil
}

// Delete consome o convite; idempotente.
func (r *InvitationRepo) Delete(ctx context.Context, email string) error {
	if err := r.st.Delete(ctx, store.ColInvitations, email); err != nil {
		return fmt.Errorf("remover convite: %w", err)
	}
	return nil
}

// List devolve todos os convites pendentes.
func (r *InvitationRepo) List(ctx context.Context) ([]*entity.Invitation, error) {
	snap, err := r.st.Query(ctx, store.Query{Collection: store.ColInvitations})
	if err != nil {
		return nil, fmt.Errorf("listar convites: %w", err)
	}
	out := make([]*entity.Invitation, 0, len(snap))
	for _, doc := range snap {
		out = append(out, invitationFromDoc(doc))
	}
	return out, nil
}

func invitationFromDoc(doc store.Document) *entity.Invitation {
	return &entity.Invitation{
		Email:     str(doc.Data, "email"),
		Role:      str(doc.Data, "role"),
		CreatedAt: when(doc.Data, "createdAt"),
	}
}
