package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_TokenPresent(t *testing.T) {
	t.Setenv(TokenEnvVar, "abc123")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.BearerToken)
}

func TestLoad_TokenAbsent(t *testing.T) {
	t.Setenv(TokenEnvVar, "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingToken)
}
