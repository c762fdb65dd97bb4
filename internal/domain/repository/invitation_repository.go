package repository

import (
	"context"

	"github.com/msantana/advocacia-pro/internal/domain/entity"
)

// InvitationRepository porto de persistência dos convites pendentes
// (coleção invitations, chaveada pelo email do convidado).
type InvitationRepository interface {
	Put(ctx context.Context, inv *entity.Invitation) error
	GetByEmail(ctx context.Context, email string) (*entity.Invitation, error)
	// Delete é idempotente: remover um convite já consumido não é erro.
	Delete(ctx context.Context, email string) error
	List(ctx context.Context) ([]*entity.Invitation, error)
}
