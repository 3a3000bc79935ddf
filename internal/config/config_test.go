package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "file", cfg.StorageBackend)
	assert.Equal(t, "data/records.json", cfg.RecordsFile)
	assert.Equal(t, "langchain", cfg.ReflectionProvider)
	assert.Equal(t, "Qwen/Qwen2.5-7B-Instruct", cfg.ReflectionModel)
}

func TestLoad_DotEnvAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9999\nAUTH_TOKEN=from-file\n"), 0o644))
	t.Setenv("AUTH_TOKEN", "from-env")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.ServerPort)
	assert.Equal(t, "from-env", cfg.AuthToken)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")

	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "POSTGRES_DSN")
}

func TestValidate(t *testing.T) {
	base := Config{
		Env: "production", StorageBackend: "file",
		RecordsFile: "r", ActivitiesFile: "a", ProfilesFile: "p",
		AuthMode: "local", AuthToken: "t", ReflectionProvider: "none",
	}
	assert.NoError(t, base.Validate())

	bad := base
	bad.Env = "qa"
	assert.Error(t, bad.Validate())

	bad = base
	bad.AuthMode = "remote"
	assert.ErrorContains(t, bad.Validate(), "AUTH_SERVICE_URL")

	bad = base
	bad.ReflectionProvider = "gemini"
	assert.Error(t, bad.Validate())

	bad = base
	bad.ProfilesFile = ""
	assert.Error(t, bad.Validate())
}
