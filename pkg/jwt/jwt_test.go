package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msantana/advocacia-pro/pkg/jwt"
)

func TestGenerateEParse(t *testing.T) {
	tok, err := jwt.Generate("segredo", "u1", "a@ex.com", "main_admin", "advocacia-pro", 60)
	require.NoError(t, err)

	uid, email, role, err := jwt.Parse("segredo", tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
	assert.Equal(t, "a@ex.com", email)
	assert.Equal(t, "main_admin", role)
}

func TestParse_SegredoErrado(t *testing.T) {
	tok, err := jwt.Generate("segredo", "u1", "a@ex.com", "main_admin", "advocacia-pro", 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("outro", tok)
	assert.Error(t, err, "assinatura com outro segredo deve ser rejeitada")
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate("segredo", "u1", "a@ex.com", "main_admin", "advocacia-pro", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("segredo", tok)
	assert.Error(t, err, "token expirado deve ser rejeitado")
}

func TestGenerate_SecretVazio(t *testing.T) {
	_, err := jwt.Generate("", "u1", "a@ex.com", "main_admin", "advocacia-pro", 60)
	assert.Error(t, err)
}
