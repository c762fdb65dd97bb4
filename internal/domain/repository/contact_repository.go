package repository

import (
	"context"

	"github.com/msantana/advocacia-pro/internal/domain/entity"
)

// ContactRepository porto de persistência das mensagens de contato.
type ContactRepository interface {
	// Create persiste a mensagem e preenche o ID gerado.
	Create(ctx context.Context, c *entity.Contact) error
	// List devolve as mensagens ordenadas por submittedAt decrescente.
	List(ctx context.Context) ([]*entity.Contact, error)
	Delete(ctx context.Context, id string) error
}
