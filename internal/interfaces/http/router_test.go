package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msantana/advocacia-pro/internal/application/auth"
	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/application/usecase"
	"github.com/msantana/advocacia-pro/internal/infrastructure/docstore"
	"github.com/msantana/advocacia-pro/internal/infrastructure/identity"
	apphttp "github.com/msantana/advocacia-pro/internal/interfaces/http"
	"github.com/msantana/advocacia-pro/internal/store/memory"
	"github.com/msantana/advocacia-pro/pkg/logger"
)

// stubLLM devolve sempre a mesma análise; evita chamadas externas nos testes.
type stubLLM struct{}

func (stubLLM) AnalyzeLegalText(_ context.Context, _ string) (string, error) {
	return "## Análise\n\nSem riscos identificados.", nil
}

// buildAPI monta a aplicação completa sobre o armazém em memória.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	st := memory.New()

	accounts := docstore.NewAccountRepository(st)
	invitations := docstore.NewInvitationRepository(st)
	contacts := docstore.NewContactRepository(st)
	clients := docstore.NewClientRepository(st)
	cases := docstore.NewCaseRepository(st)
	provider := identity.NewProvider(st, log)

	authUC := auth.NewAuthUseCase(provider, accounts, invitations, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       authUC,
		ContactUC:    usecase.NewContactUseCase(contacts),
		ClientUC:     usecase.NewClientUseCase(clients),
		CaseUC:       usecase.NewCaseUseCase(cases, clients),
		InvitationUC: usecase.NewInvitationUseCase(invitations, accounts),
		TeamUC:       usecase.NewTeamUseCase(accounts, invitations),
		AIUC:         usecase.NewAIUseCase(stubLLM{}),
		Store:        st,
		JWTSecret:    testJWTSecret,
		Log:          log,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// register cadastra um administrador e devolve a resposta de auth.
func register(t *testing.T, app *fiber.App, email, password string) dto.AuthResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: email, Password: password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.AuthResponse](t, resp)
}

func TestAPI_FluxoDeCadastroEConvite(t *testing.T) {
	app := buildAPI(t)

	// bootstrap: o primeiro cadastro vira main_admin
	founder := register(t, app, "fundador@ex.com", "senha123")
	assert.Equal(t, "main_admin", founder.Role)

	// sem convite o cadastro é rejeitado
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "intruso@ex.com", Password: "senha123",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// main_admin convida; o convidado se cadastra com o papel do convite
	resp = doJSON(t, app, http.MethodPost, "/api/invitations", founder.Token, dto.InviteRequest{
		Email: "socio@ex.com", Role: "secondary_admin",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	partner := register(t, app, "socio@ex.com", "senha123")
	assert.Equal(t, "secondary_admin", partner.Role)

	// convite consumido não aparece mais na equipe
	resp = doJSON(t, app, http.MethodGet, "/api/users", founder.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	team := decode[dto.TeamResponse](t, resp)
	assert.Len(t, team.Accounts, 2)
	assert.Empty(t, team.Invitations)

	// secondary_admin não vê a equipe
	resp = doJSON(t, app, http.MethodGet, "/api/users", partner.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_ContatoPublicoECaixaDeEntrada(t *testing.T) {
	app := buildAPI(t)
	admin := register(t, app, "fundador@ex.com", "senha123")

	// o formulário do site grava sem autenticação
	resp := doJSON(t, app, http.MethodPost, "/api/contacts", "", dto.CreateContactRequest{
		Name: "Visitante", Email: "visitante@ex.com", Message: "Preciso de orientação",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ContactResponse](t, resp)

	// a caixa de entrada exige token
	resp = doJSON(t, app, http.MethodGet, "/api/contacts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/contacts", admin.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inbox := decode[[]dto.ContactResponse](t, resp)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Visitante", inbox[0].Name)

	resp = doJSON(t, app, http.MethodDelete, "/api/contacts/"+created.ID, admin.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_ClientesECasosComRBAC(t *testing.T) {
	app := buildAPI(t)
	admin := register(t, app, "fundador@ex.com", "senha123")

	resp := doJSON(t, app, http.MethodPost, "/api/invitations", admin.Token, dto.InviteRequest{
		Email: "socio@ex.com", Role: "secondary_admin",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	partner := register(t, app, "socio@ex.com", "senha123")

	// cliente criado por qualquer administrador
	resp = doJSON(t, app, http.MethodPost, "/api/clients/", partner.Token, dto.CreateClientRequest{
		Name: "Empresa Alfa", Status: "Ativo",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	client := decode[dto.ClientResponse](t, resp)

	// processo vinculado ao cliente copia o nome
	resp = doJSON(t, app, http.MethodPost, "/api/cases/", partner.Token, dto.CreateCaseRequest{
		Title: "Ação 0001", ClientID: client.ID, Status: "Ativo", Amount: "5000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cs := decode[dto.CaseResponse](t, resp)
	assert.Equal(t, "Empresa Alfa", cs.ClientName)

	// exclusão barrada para secondary_admin no middleware
	resp = doJSON(t, app, http.MethodDelete, "/api/clients/"+client.ID, partner.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/cases/"+cs.ID, admin.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/clients/"+client.ID, admin.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_SessaoELogin(t *testing.T) {
	app := buildAPI(t)
	admin := register(t, app, "fundador@ex.com", "senha123")

	resp := doJSON(t, app, http.MethodGet, "/api/auth/session", admin.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sess := decode[dto.SessionResponse](t, resp)
	assert.Equal(t, "authorized", sess.State)
	assert.Equal(t, "main_admin", sess.Role)

	// login com senha errada responde genérico
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "fundador@ex.com", Password: "errada",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "fundador@ex.com", Password: "senha123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/logout", admin.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_AnaliseDeTexto(t *testing.T) {
	app := buildAPI(t)
	admin := register(t, app, "fundador@ex.com", "senha123")

	resp := doJSON(t, app, http.MethodPost, "/api/ai/analyze", admin.Token, dto.AIAnalysisRequest{
		Text: "Contrato de prestação de serviços advocatícios.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.AIAnalysisResponse](t, resp)
	assert.Contains(t, out.Analysis, "Análise")

	resp = doJSON(t, app, http.MethodPost, "/api/ai/analyze", admin.Token, dto.AIAnalysisRequest{Text: "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
