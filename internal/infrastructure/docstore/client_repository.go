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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo clientes sobre a coleção clients.
type ClientRepo struct {
	st store.Store
}

// NewClientRepository constrói o adaptador.
func NewClientRepository(st store.Store) *ClientRepo {
	return &ClientRepo{st: st}
}

// Create persiste o cliente e preenche o ID gerado.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if err := r.st.Set(ctx, store.ColClients, c.ID, clientToDoc(c)); err != nil {
		return fmt.Errorf("criar cliente: %w", err)
	}
	return nil
}

// GetByID devolve o cliente ou (nil, nil) se ausente.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	doc, err := r.st.Get(ctx, store.ColClients, id)
	if err != nil {
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return clientFromDoc(*doc), nil
}

// Update regrava os campos mutáveis do cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	c.UpdatedAt = time.Now()
	err := r.st.Update(ctx, store.ColClients, c.ID, map[string]any{
		"name":      c.Name,
		"email":     c.Email,
		"phone":     c.Phone,
		"address":   c.Address,
		"status":    c.Status,
		"updatedAt": stamp(c.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("atualizar cliente: %w", err)
	}
	return nil
}

// Delete remove o cliente.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	if err := r.st.Delete(ctx, store.ColClients, id); err != nil {
		return fmt.Errorf("remover cliente: %w", err)
	}
	return nil
}

// List devolve os clientes sem ordenação garantida (a colação pt-BR por nome
// é aplicada na camada de aplicação, como o front original fazia).
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	snap, err := r.st.Query(ctx, ClientsQuery())
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]*entity.Client, 0, len(snap))
	for _, doc := range snap {
		out = append(out, clientFromDoc(doc))
	}
	return out, nil
}

// ClientsQuery é a consulta canônica de clientes (também usada pelo realtime).
func ClientsQuery() store.Query {
	return store.Query{Collection: store.ColClients}
}

func clientToDoc(c *entity.Client) map[string]any {
	return map[string]any{
		"name":      c.Name,
		"email":     c.Email,
		"phone":     c.Phone,
		"address":   c.Address,
		"status":    c.Status,
		"createdAt": stamp(c.CreatedAt),
		"updatedAt": stamp(c.UpdatedAt),
	}
}

func clientFromDoc(doc store.Document) *entity.Client {
	return &entity.Client{
		ID:        doc.ID,
		Name:      str(doc.Data, "name"),
		Email:     str(doc.Data, "email"),
		Phone:     str(doc.Data, "phone"),
		Address:   str(doc.Data, "address"),
		Status:    str(doc.Data, "status"),
		CreatedAt: when(doc.Data, "createdAt"),
		UpdatedAt: when(doc.Data, "updatedAt"),
	}
}
