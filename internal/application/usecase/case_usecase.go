package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/domain"
	"github.com/msantana/advocacia-pro/internal/domain/entity"
	"github.com/msantana/advocacia-pro/internal/domain/repository"
)

// CaseUseCase casos de uso CRUD para processos. O nome do cliente é copiado
// para o processo no momento da criação e não é ressincronizado depois; um
// cliente renomeado mantém o nome antigo nos processos já abertos.
type CaseUseCase struct {
	repo       repository.CaseRepository
	clientRepo repository.ClientRepository
}

// NewCaseUseCase constrói o caso de uso.
func NewCaseUseCase(repo repository.CaseRepository, clientRepo repository.ClientRepository) *CaseUseCase {
	return &CaseUseCase{repo: repo, clientRepo: clientRepo}
}

// Create abre um processo vinculado a um cliente existente.
func (uc *CaseUseCase) Create(ctx context.Context, in dto.CreateCaseRequest) (*dto.CaseResponse, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || !entity.ValidCaseStatus(in.Status) {
		return nil, domain.ErrEntradaInvalida
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}

	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNaoEncontrado
	}

	cs := &entity.Case{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		ClientID:    client.ID,
		ClientName:  client.Name,
		Status:      in.Status,
		Amount:      amount,
	}
	if err := uc.repo.Create(ctx, cs); err != nil {
		return nil, err
	}
	return toCaseResponse(cs), nil
}

// Get devolve um processo por id.
func (uc *CaseUseCase) Get(ctx context.Context, id string) (*dto.CaseResponse, error) {
	cs, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toCaseResponse(cs), nil
}

// Update regrava título, descrição, status e valor. O vínculo com o cliente e
// o nome copiado não mudam.
func (uc *CaseUseCase) Update(ctx context.Context, id string, in dto.UpdateCaseRequest) (*dto.CaseResponse, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || !entity.ValidCaseStatus(in.Status) {
		return nil, domain.ErrEntradaInvalida
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}

	cs, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, domain.ErrNaoEncontrado
	}
	cs.Title = title
	cs.Description = strings.TrimSpace(in.Description)
	cs.Status = in.Status
	cs.Amount = amount
	if err := uc.repo.Update(ctx, cs); err != nil {
		return nil, err
	}
	return toCaseResponse(cs), nil
}

// Delete remove um processo. Apenas main_admin pode excluir.
func (uc *CaseUseCase) Delete(ctx context.Context, role, id string) error {
	if role != entity.RoleMainAdmin {
		return domain.ErrPermissaoNegada
	}
	return uc.repo.Delete(ctx, id)
}

// List devolve os processos, mais recentes primeiro.
func (uc *CaseUseCase) List(ctx context.Context) ([]dto.CaseResponse, error) {
	cases, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CaseResponse, 0, len(cases))
	for _, c := range cases {
		out = append(out, *toCaseResponse(c))
	}
	return out, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func toCaseResponse(c *entity.Case) *dto.CaseResponse {
	return &dto.CaseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		ClientID:    c.ClientID,
		ClientName:  c.ClientName,
		Status:      c.Status,
		Amount:      c.Amount.String(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
