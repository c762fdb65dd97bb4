package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/domain"
	"github.com/msantana/advocacia-pro/internal/domain/entity"
	"github.com/msantana/advocacia-pro/internal/domain/repository"
)

// InvitationUseCase convites que autorizam o cadastro de novos
// administradores. Cada email tem no máximo um convite pendente.
type InvitationUseCase struct {
	invitationRepo repository.InvitationRepository
	accountRepo    repository.AccountRepository
}

// NewInvitationUseCase constrói o caso de uso.
func NewInvitationUseCase(invitationRepo repository.InvitationRepository, accountRepo repository.AccountRepository) *InvitationUseCase {
	return &InvitationUseCase{invitationRepo: invitationRepo, accountRepo: accountRepo}
}

// Invite registra um convite pendente para o email. Rejeita emails já
// convidados (ErrConviteDuplicado) e já registrados (ErrEmailJaRegistrado).
func (uc *InvitationUseCase) Invite(ctx context.Context, in dto.InviteRequest) (*dto.InvitationResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") || !entity.ValidRole(in.Role) {
		return nil, domain.ErrEntradaInvalida
	}

	existing, err := uc.invitationRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConviteDuplicado
	}

	account, err := uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account != nil {
		return nil, domain.ErrEmailJaRegistrado
	}

	inv := &entity.Invitation{
		Email:     email,
		Role:      in.Role,
		CreatedAt: time.Now(),
	}
	if err := uc.invitationRepo.Put(ctx, inv); err != nil {
		return nil, err
	}
	return toInvitationResponse(inv), nil
}

// Revoke cancela um convite pendente. Remoção é idempotente.
func (uc *InvitationUseCase) Revoke(ctx context.Context, email string) error {
	return uc.invitationRepo.Delete(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func toInvitationResponse(inv *entity.Invitation) *dto.InvitationResponse {
	return &dto.InvitationResponse{
		Email:     inv.Email,
		Role:      inv.Role,
		CreatedAt: inv.CreatedAt,
	}
}
