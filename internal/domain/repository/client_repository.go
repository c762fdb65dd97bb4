package repository

import (
	"context"

	"github.com/msantana/advocacia-pro/internal/domain/entity"
)

// ClientRepository porto de persistência de clientes.
type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	Update(ctx context.Context, c *entity.Client) error
	Delete(ctx context.Context, id string) error
	// List devolve os clientes sem ordenação garantida; a ordenação por nome
	// (colação pt-BR) é aplicada na camada de aplicação.
	List(ctx context.Context) ([]*entity.Client, error)
}
