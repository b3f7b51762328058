package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	tok, err := GerarToken(42, "vendedor", false)
	require.NoError(t, err)

	claims, err := ParseAndValidate(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "vendedor", claims.Cargo)
	assert.False(t, claims.IsAdmin)
}

func TestTokenAdulteradoFalha(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	tok, err := GerarToken(1, "sdr", true)
	require.NoError(t, err)

	_, err = ParseAndValidate(tok + "x")
	assert.Error(t, err)
}

func TestTokenDeOutroSegredoFalha(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-a")
	tok, err := GerarToken(1, "sdr", false)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "segredo-b")
	_, err = ParseAndValidate(tok)
	assert.Error(t, err)
}
