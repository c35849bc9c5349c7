package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers restoration; the vars must be truly unset for the
	// defaults to kick in.
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	os.Unsetenv("PORT")
	os.Unsetenv("ENV")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
}

func TestLoadProductionFlag(t *testing.T) {
	t.Setenv("ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestCorsOriginsList(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://localhost:5173,https://app.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:5173", "https://app.example.com"}, cfg.CorsOrigins)
}
