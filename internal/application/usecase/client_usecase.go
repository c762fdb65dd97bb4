package usecase

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/domain"
	"github.com/msantana/advocacia-pro/internal/domain/entity"
	"github.com/msantana/advocacia-pro/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes do escritório. A exclusão é
// restrita ao papel main_admin.
type ClientUseCase struct {
	repo repository.ClientRepository
	coll *collate.Collator
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{
		repo: repo,
		coll: collate.New(language.BrazilianPortuguese, collate.IgnoreCase),
	}
}

// Create cadastra um cliente novo.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !entity.ValidClientStatus(in.Status) {
		return nil, domain.ErrEntradaInvalida
	}
	client := &entity.Client{
		Name:    name,
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
		Status:  in.Status,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Get devolve um cliente por id.
func (uc *ClientUseCase) Get(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toClientResponse(client), nil
}

// Update regrava os dados do cliente.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !entity.ValidClientStatus(in.Status) {
		return nil, domain.ErrEntradaInvalida
	}
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNaoEncontrado
	}
	client.Name = name
	client.Email = strings.TrimSpace(in.Email)
	client.Phone = strings.TrimSpace(in.Phone)
	client.Address = strings.TrimSpace(in.Address)
	client.Status = in.Status
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete remove um cliente. Apenas main_admin pode excluir.
func (uc *ClientUseCase) Delete(ctx context.Context, role, id string) error {
	if role != entity.RoleMainAdmin {
		return domain.ErrPermissaoNegada
	}
	return uc.repo.Delete(ctx, id)
}

// List devolve os clientes em ordem alfabética pt-BR pelo nome.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	uc.SortClients(clients)
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// SortClients ordena in-place por nome com colação pt-BR. Também usado pelo
// fluxo realtime para manter a mesma ordem nas snapshots.
func (uc *ClientUseCase) SortClients(clients []*entity.Client) {
	sort.SliceStable(clients, func(i, j int) bool {
		return uc.coll.CompareString(clients[i].Name, clients[j].Name) < 0
	})
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
