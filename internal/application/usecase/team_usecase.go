package usecase

import (
	"context"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/domain/repository"
)

// TeamUseCase visão da equipe administrativa: contas registradas e convites
// ainda pendentes.
type TeamUseCase struct {
	accountRepo    repository.AccountRepository
	invitationRepo repository.InvitationRepository
}

// NewTeamUseCase constrói o caso de uso.
func NewTeamUseCase(accountRepo repository.AccountRepository, invitationRepo repository.InvitationRepository) *TeamUseCase {
	return &TeamUseCase{accountRepo: accountRepo, invitationRepo: invitationRepo}
}

// List devolve contas e convites pendentes.
func (uc *TeamUseCase) List(ctx context.Context) (*dto.TeamResponse, error) {
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	invitations, err := uc.invitationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.TeamResponse{
		Accounts:    make([]dto.AccountResponse, 0, len(accounts)),
		Invitations: make([]dto.InvitationResponse, 0, len(invitations)),
	}
	for _, a := range accounts {
		out.Accounts = append(out.Accounts, dto.AccountResponse{
			UID:       a.UID,
			Email:     a.Email,
			Role:      a.Role,
			CreatedAt: a.CreatedAt,
		})
	}
	for _, inv := range invitations {
		out.Invitations = append(out.Invitations, *toInvitationResponse(inv))
	}
	return out, nil
}
