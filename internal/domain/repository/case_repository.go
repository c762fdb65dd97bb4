package repository

import (
	"context"

	"github.com/msantana/advocacia-pro/internal/domain/entity"
)

// CaseRepository porto de persistência de processos.
type CaseRepository interface {
	Create(ctx context.Context, cs *entity.Case) error
	GetByID(ctx context.Context, id string) (*entity.Case, error)
	Update(ctx context.Context, cs *entity.Case) error
	Delete(ctx context.Context, id string) error
	// List devolve os processos ordenados por createdAt decrescente.
	List(ctx context.Context) ([]*entity.Case, error)
}
