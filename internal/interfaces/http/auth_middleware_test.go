package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/msantana/advocacia-pro/internal/interfaces/http"
	pkgjwt "github.com/msantana/advocacia-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUID       = "00000000-0000-0000-0000-000000000001"
	testEmail     = "teste@escritorio.com"
	testIssuer    = "advocacia-pro-test"
	testExpMin    = 60
)

// buildTestApp constrói uma aplicação Fiber mínima com:
//   - AuthMiddleware para validar o JWT e carregar os locals
//   - RequireRole para autorizar o acesso
//   - Um handler dummy que devolve 200 se passa pelos middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole gera um JWT com o papel indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUID, testEmail, role, testIssuer, testExpMin)
	require.NoError(t, err, "deve ser possível gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara um GET /protected e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// O usuário tem o papel exigido → passa (HTTP 200).
func TestRequireRole_MainAdminAcessaRotaRestrita(t *testing.T) {
	app := buildTestApp("main_admin")
	resp := doRequest(t, app, tokenForRole(t, "main_admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"main_admin deve acessar rota restrita a main_admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "main_admin", body["role"])
}

// O usuário tem um dos papéis permitidos (multi-papel) → HTTP 200.
func TestRequireRole_SecondaryAdminEmRotaMultiPapel(t *testing.T) {
	app := buildTestApp("main_admin", "secondary_admin")
	resp := doRequest(t, app, tokenForRole(t, "secondary_admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Papel diferente do exigido → HTTP 403 Forbidden.
func TestRequireRole_SecondaryAdminBarradoEmRotaMainAdmin(t *testing.T) {
	app := buildTestApp("main_admin")
	resp := doRequest(t, app, tokenForRole(t, "secondary_admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"secondary_admin não pode acessar rota restrita a main_admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"a resposta de erro deve incluir o código FORBIDDEN")
}

// Token sem papel (claim vazio) → HTTP 401 com MISSING_ROLE.
func TestRequireRole_TokenSemPapel(t *testing.T) {
	app := buildTestApp("main_admin")
	resp := doRequest(t, app, tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SemHeader(t *testing.T) {
	app := buildTestApp("main_admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp("main_admin")
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenAdulterado(t *testing.T) {
	app := buildTestApp("main_admin")
	resp := doRequest(t, app, tokenForRole(t, "main_admin")+"x")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SegredoErrado(t *testing.T) {
	tok, err := pkgjwt.Generate("outro-segredo", testUID, testEmail, "main_admin", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp("main_admin")
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token assinado com outro segredo deve ser rejeitado")
}

// Os locals carregados pelo middleware ficam disponíveis para os handlers.
func TestAuthMiddleware_CarregaLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/who",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"uid":   apphttp.GetUID(c),
				"email": apphttp.GetEmail(c),
				"role":  apphttp.GetRole(c),
			})
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", tokenForRole(t, "secondary_admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUID, body["uid"])
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, "secondary_admin", body["role"])
}
