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

type caseFixture struct {
	clientUC *usecase.ClientUseCase
	caseUC   *usecase.CaseUseCase
}

func newCaseFixture() *caseFixture {
	st := memory.New()
	clientRepo := docstore.NewClientRepository(st)
	return &caseFixture{
		clientUC: usecase.NewClientUseCase(clientRepo),
		caseUC:   usecase.NewCaseUseCase(docstore.NewCaseRepository(st), clientRepo),
	}
}

func (f *caseFixture) newClient(t *testing.T, name string) string {
	t.Helper()
	c, err := f.clientUC.Create(context.Background(), dto.CreateClientRequest{
		Name: name, Status: entity.ClientAtivo,
	})
	require.NoError(t, err)
	return c.ID
}

func TestCaseCreate_CopiaNomeDoCliente(t *testing.T) {
	f := newCaseFixture()
	ctx := context.Background()
	clientID := f.newClient(t, "Empresa Alfa Ltda")

	cs, err := f.caseUC.Create(ctx, dto.CreateCaseRequest{
		Title:    "Ação trabalhista 0001",
		ClientID: clientID,
		Status:   entity.CaseAtivo,
		Amount:   "15000.50",
	})
	require.NoError(t, err)
	assert.Equal(t, "Empresa Alfa Ltda", cs.ClientName)
	assert.Equal(t, "15000.5", cs.Amount, "o valor da causa deve manter a precisão decimal")
}

func TestCaseCreate_ClienteInexistente(t *testing.T) {
	f := newCaseFixture()
	_, err := f.caseUC.Create(context.Background(), dto.CreateCaseRequest{
		Title:    "Sem dono",
		ClientID: "nao-existe",
		Status:   entity.CaseAtivo,
	})
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestCaseValidacao(t *testing.T) {
	f := newCaseFixture()
	ctx := context.Background()
	clientID := f.newClient(t, "Empresa Beta")

	_, err := f.caseUC.Create(ctx, dto.CreateCaseRequest{
		Title: "", ClientID: clientID, Status: entity.CaseAtivo,
	})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = f.caseUC.Create(ctx, dto.CreateCaseRequest{
		Title: "x", ClientID: clientID, Status: "Encerrado",
	})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida, "status fora do conjunto deve ser rejeitado")

	_, err = f.caseUC.Create(ctx, dto.CreateCaseRequest{
		Title: "x", ClientID: clientID, Status: entity.CaseAtivo, Amount: "abc",
	})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida, "valor não numérico deve ser rejeitado")
}

// O nome copiado não é ressincronizado: renomear o cliente não muda o
// processo já aberto.
func TestCase_NomeCopiadoNaoRessincroniza(t *testing.T) {
	f := newCaseFixture()
	ctx := context.Background()
	clientID := f.newClient(t, "Empresa Gama")

	cs, err := f.caseUC.Create(ctx, dto.CreateCaseRequest{
		Title: "Processo 42", ClientID: clientID, Status: entity.CasePendente,
	})
	require.NoError(t, err)

	_, err = f.clientUC.Update(ctx, clientID, dto.UpdateClientRequest{
		Name: "Empresa Gama Renomeada", Status: entity.ClientAtivo,
	})
	require.NoError(t, err)

	got, err := f.caseUC.Get(ctx, cs.ID)
	require.NoError(t, err)
	assert.Equal(t, "Empresa Gama", got.ClientName,
		"o processo guarda o nome do cliente da época da criação")
}

func TestCaseUpdateEDelete(t *testing.T) {
	f := newCaseFixture()
	ctx := context.Background()
	clientID := f.newClient(t, "Empresa Delta")

	cs, err := f.caseUC.Create(ctx, dto.CreateCaseRequest{
		Title: "Inicial", ClientID: clientID, Status: entity.CaseAtivo, Amount: "100",
	})
	require.NoError(t, err)

	updated, err := f.caseUC.Update(ctx, cs.ID, dto.UpdateCaseRequest{
		Title: "Revisado", Status: entity.CaseArquivado, Amount: "250.75",
	})
	require.NoError(t, err)
	assert.Equal(t, "Revisado", updated.Title)
	assert.Equal(t, entity.CaseArquivado, updated.Status)
	assert.Equal(t, "250.75", updated.Amount)
	assert.Equal(t, clientID, updated.ClientID, "o vínculo com o cliente não muda no update")

	err = f.caseUC.Delete(ctx, entity.RoleSecondaryAdmin, cs.ID)
	require.ErrorIs(t, err, domain.ErrPermissaoNegada)

	require.NoError(t, f.caseUC.Delete(ctx, entity.RoleMainAdmin, cs.ID))
	_, err = f.caseUC.Get(ctx, cs.ID)
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// Listagem ordenada por criação, mais recentes primeiro.
func TestCaseList_MaisRecentesPrimeiro(t *testing.T) {
	f := newCaseFixture()
	ctx := context.Background()
	clientID := f.newClient(t, "Empresa Épsilon")

	for _, title := range []string{"Primeiro", "Segundo", "Terceiro"} {
		_, err := f.caseUC.Create(ctx, dto.CreateCaseRequest{
			Title: title, ClientID: clientID, Status: entity.CaseAtivo,
		})
		require.NoError(t, err)
	}

	list, err := f.caseUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.False(t, list[0].CreatedAt.Before(list[1].CreatedAt))
	assert.False(t, list[1].CreatedAt.Before(list[2].CreatedAt))
}
