package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msantana/advocacia-pro/internal/application/auth"
	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/domain"
	"github.com/msantana/advocacia-pro/internal/domain/entity"
	"github.com/msantana/advocacia-pro/internal/infrastructure/docstore"
	"github.com/msantana/advocacia-pro/internal/infrastructure/identity"
	"github.com/msantana/advocacia-pro/internal/store"
	"github.com/msantana/advocacia-pro/internal/store/memory"
	"github.com/msantana/advocacia-pro/pkg/logger"
)

// fixture monta o caso de uso sobre o armazém em memória.
type fixture struct {
	st       *memory.Store
	uc       *auth.AuthUseCase
	identity *identity.Provider
	accounts *docstore.AccountRepo
	invites  *docstore.InvitationRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	st := memory.New()
	accounts := docstore.NewAccountRepository(st)
	invites := docstore.NewInvitationRepository(st)
	provider := identity.NewProvider(st, log)
	uc := auth.NewAuthUseCase(provider, accounts, invites, auth.JWTConfig{
		Secret:     "segredo-de-teste",
		ExpMinutes: 60,
		Issuer:     "advocacia-pro-test",
	}, log)
	return &fixture{st: st, uc: uc, identity: provider, accounts: accounts, invites: invites}
}

// O primeiro cadastro num registro vazio vira main_admin.
func TestRegister_PrimeiroCadastroViraMainAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.Register(ctx, dto.RegisterRequest{Email: "Fundador@Escritorio.com", Password: "senha123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMainAdmin, out.Role, "o primeiro cadastro deve receber main_admin")
	assert.Equal(t, "fundador@escritorio.com", out.Email, "o email deve ser normalizado em minúsculas")
	assert.NotEmpty(t, out.Token)

	account, err := f.accounts.GetByUID(ctx, out.UID)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, entity.RoleMainAdmin, account.Role)
}

// Sem convite e com registro não vazio, o cadastro é rejeitado e a credencial
// recém-criada é desfeita.
func TestRegister_SemConviteRejeitaECompensaCredencial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, dto.RegisterRequest{Email: "fundador@ex.com", Password: "senha123"})
	require.NoError(t, err)

	_, err = f.uc.Register(ctx, dto.RegisterRequest{Email: "intruso@ex.com", Password: "senha123"})
	require.ErrorIs(t, err, domain.ErrRegistroNaoAutorizado)

	// nenhuma conta gravada
	account, err := f.accounts.GetByEmail(ctx, "intruso@ex.com")
	require.NoError(t, err)
	assert.Nil(t, account, "o cadastro rejeitado não pode deixar conta no registro")

	// a credencial foi removida: o mesmo email pode ser convidado e cadastrado depois
	snap, err := f.st.Query(ctx, store.Query{
		Collection: store.ColCredentials,
		Filters:    []store.Filter{{Field: "email", Op: store.OpEq, Value: "intruso@ex.com"}},
	})
	require.NoError(t, err)
	assert.Empty(t, snap, "a credencial órfã deve ser removida na compensação")
}

// Com convite pendente o cadastro recebe o papel convidado e consome o convite.
func TestRegister_ComConviteRecebePapelEConsomeConvite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, dto.RegisterRequest{Email: "fundador@ex.com", Password: "senha123"})
	require.NoError(t, err)

	require.NoError(t, f.invites.Put(ctx, &entity.Invitation{Email: "socio@ex.com", Role: entity.RoleSecondaryAdmin}))

	out, err := f.uc.Register(ctx, dto.RegisterRequest{Email: "socio@ex.com", Password: "senha123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSecondaryAdmin, out.Role, "o papel deve vir do convite")

	inv, err := f.invites.GetByEmail(ctx, "socio@ex.com")
	require.NoError(t, err)
	assert.Nil(t, inv, "o convite deve ser consumido no cadastro")
}

// Senha curta ou email já usado falham na criação da credencial e abortam tudo.
func TestRegister_CredencialInvalida(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, dto.RegisterRequest{Email: "fundador@ex.com", Password: "12345"})
	require.ErrorIs(t, err, domain.ErrCredencial, "senha com menos de 6 caracteres deve ser rejeitada")

	_, err = f.uc.Register(ctx, dto.RegisterRequest{Email: "fundador@ex.com", Password: "senha123"})
	require.NoError(t, err)

	_, err = f.uc.Register(ctx, dto.RegisterRequest{Email: "fundador@ex.com", Password: "outrasenha"})
	require.ErrorIs(t, err, domain.ErrCredencial, "email com credencial existente deve ser rejeitado")
}

func TestLogin_CredenciaisECasosDeBorda(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg, err := f.uc.Register(ctx, dto.RegisterRequest{Email: "fundador@ex.com", Password: "senha123"})
	require.NoError(t, err)

	out, err := f.uc.Login(ctx, dto.LoginRequest{Email: "fundador@ex.com", Password: "senha123"})
	require.NoError(t, err)
	assert.Equal(t, reg.UID, out.UID)
	assert.Equal(t, entity.RoleMainAdmin, out.Role)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "fundador@ex.com", Password: "errada"})
	require.ErrorIs(t, err, domain.ErrCredencial)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "ninguem@ex.com", Password: "senha123"})
	require.ErrorIs(t, err, domain.ErrCredencial)
	assert.True(t, auth.IsCredentialErr(err), "erros de credencial devem mapear para resposta genérica")
}

// Credencial válida sem conta no registro é desconectada e o login falha.
func TestLogin_CredencialSemContaRegistrada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// credencial criada por fora do protocolo de cadastro
	_, err := f.identity.CreateCredential(ctx, "orfa@ex.com", "senha123")
	require.NoError(t, err)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "orfa@ex.com", Password: "senha123"})
	require.ErrorIs(t, err, domain.ErrContaSemRegistro)
	assert.True(t, auth.IsCredentialErr(err),
		"conta sem registro deve responder igual a credencial inválida")
}

// Cenário completo: bootstrap, convite, cadastro do convidado e sessão.
func TestFluxoCompletoDeCadastro(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	founder, err := f.uc.Register(ctx, dto.RegisterRequest{Email: "fundador@ex.com", Password: "senha123"})
	require.NoError(t, err)
	require.Equal(t, entity.RoleMainAdmin, founder.Role)

	require.NoError(t, f.invites.Put(ctx, &entity.Invitation{Email: "advogada@ex.com", Role: entity.RoleSecondaryAdmin}))

	partner, err := f.uc.Register(ctx, dto.RegisterRequest{Email: "advogada@ex.com", Password: "senha123"})
	require.NoError(t, err)
	require.Equal(t, entity.RoleSecondaryAdmin, partner.Role)

	sess, err := f.uc.CurrentAccount(ctx, partner.UID)
	require.NoError(t, err)
	assert.Equal(t, "authorized", sess.State)
	assert.Equal(t, entity.RoleSecondaryAdmin, sess.Role)

	accounts, err := f.accounts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}
