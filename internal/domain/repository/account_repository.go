package repository

import (
	"context"

	"github.com/msantana/advocacia-pro/internal/domain/entity"
)

// AccountRepository porto de persistência do registro de contas (coleção users).
// O registro é chaveado por uid; a busca por email é uma varredura filtrada.
type AccountRepository interface {
	Create(ctx context.Context, acc *entity.Account) error
	GetByUID(ctx context.Context, uid string) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	// Any informa se existe alguma conta (detecção do caso bootstrap).
	Any(ctx context.Context) (bool, error)
	List(ctx context.Context) ([]*entity.Account, error)
}
