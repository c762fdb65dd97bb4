package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/application/usecase"
	"github.com/msantana/advocacia-pro/internal/domain"
	"github.com/msantana/advocacia-pro/internal/domain/entity"
	"github.com/msantana/advocacia-pro/internal/infrastructure/docstore"
	"github.com/msantana/advocacia-pro/internal/store/memory"
)

func newClientUC() *usecase.ClientUseCase {
	st := memory.New()
	return usecase.NewClientUseCase(docstore.NewClientRepository(st))
}

func TestClientCRUD(t *testing.T) {
	uc := newClientUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateClientRequest{
		Name:   "Maria Souza",
		Email:  "maria@ex.com",
		Status: entity.ClientAtivo,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", got.Name)

	updated, err := uc.Update(ctx, created.ID, dto.UpdateClientRequest{
		Name:   "Maria Souza Lima",
		Status: entity.ClientInativo,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ClientInativo, updated.Status)

	_, err = uc.Get(ctx, "inexistente")
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestClientValidacao(t *testing.T) {
	uc := newClientUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateClientRequest{Name: "", Status: entity.ClientAtivo})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida, "nome vazio deve ser rejeitado")

	_, err = uc.Create(ctx, dto.CreateClientRequest{Name: "Fulano", Status: "Suspenso"})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida, "status fora do conjunto deve ser rejeitado")
}

// A exclusão é restrita ao main_admin; o secondary_admin é barrado.
func TestClientDelete_RestritoAoMainAdmin(t *testing.T) {
	uc := newClientUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateClientRequest{Name: "Fulano", Status: entity.ClientPotencial})
	require.NoError(t, err)

	err = uc.Delete(ctx, entity.RoleSecondaryAdmin, created.ID)
	require.ErrorIs(t, err, domain.ErrPermissaoNegada)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "o cliente deve continuar existindo após a tentativa barrada")

	require.NoError(t, uc.Delete(ctx, entity.RoleMainAdmin, created.ID))
	_, err = uc.Get(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// A listagem sai em ordem alfabética pt-BR: acentos e caixa não quebram a ordem.
func TestClientList_OrdemAlfabeticaPtBR(t *testing.T) {
	uc := newClientUC()
	ctx := context.Background()

	for _, name := range []string{"Zélia Prado", "antónio costa", "Álvaro Mendes", "Bruno Dias"} {
		_, err := uc.Create(ctx, dto.CreateClientRequest{Name: name, Status: entity.ClientAtivo})
		require.NoError(t, err)
	}

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)

	got := make([]string, 0, len(list))
	for _, c := range list {
		got = append(got, c.Name)
	}
	assert.Equal(t, []string{"Álvaro Mendes", "antónio costa", "Bruno Dias", "Zélia Prado"}, got,
		"a colação pt-BR deve ignorar caixa e tratar acentos como as letras base")
}
