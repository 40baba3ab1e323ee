package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "APP_ENV", "LOG_LEVEL", "ADMIN_USERNAME", "ADMIN_PASSWORD_HASH",
		"BCRYPT_COST", "CORS_ALLOWED_ORIGINS", "MAX_CONCURRENT_HASHES",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultAdminUsername, cfg.AdminUsername)
	assert.Empty(t, cfg.AdminPasswordHash)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.GreaterOrEqual(t, cfg.MaxConcurrentHashes, 1)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ADMIN_USERNAME", "  root ")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abc")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://admin.example.com,")
	t.Setenv("MAX_CONCURRENT_HASHES", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.ServerPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "root", cfg.AdminUsername)
	assert.Equal(t, "$2a$10$abc", cfg.AdminPasswordHash)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, []string{"http://localhost:5173", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 2, cfg.MaxConcurrentHashes)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{"non-numeric port", "PORT", "abc"},
		{"port out of range", "PORT", "70000"},
		{"non-numeric cost", "BCRYPT_COST", "ten"},
		{"cost too low", "BCRYPT_COST", "1"},
		{"cost too high", "BCRYPT_COST", "40"},
		{"zero workers", "MAX_CONCURRENT_HASHES", "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnv_File(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ADMIN_USERNAME=fromfile\n"), 0o600))
	require.NoError(t, os.Unsetenv("ADMIN_USERNAME"))

	chdir(t, dir)

	require.NoError(t, LoadEnv())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.AdminUsername)
}

func TestLoadEnv_NoFile(t *testing.T) {
	chdir(t, t.TempDir())
	assert.NoError(t, LoadEnv())
}

// chdir changes the working directory for the duration of the test,
// matching testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
