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

// ContactUseCase mensagens do formulário público de contato do site.
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase constrói o caso de uso.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// Submit grava uma mensagem vinda do site. É a única escrita aberta a
// visitantes não autenticados.
func (uc *ContactUseCase) Submit(ctx context.Context, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	name := strings.TrimSpace(in.Name)
	message := strings.TrimSpace(in.Message)
	if name == "" || message == "" || !strings.Contains(in.Email, "@") {
		return nil, domain.ErrEntradaInvalida
	}
	contact := &entity.Contact{
		Name:        name,
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Message:     message,
		SubmittedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// List devolve as mensagens, mais recentes primeiro.
func (uc *ContactUseCase) List(ctx context.Context) ([]dto.ContactResponse, error) {
	contacts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, *toContactResponse(c))
	}
	return out, nil
}

// Delete remove uma mensagem já tratada.
func (uc *ContactUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Message:     c.Message,
		SubmittedAt: c.SubmittedAt,
	}
}
