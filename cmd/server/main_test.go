package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Env:                "development",
		ServerPort:         "0",
		StorageBackend:     "file",
		RecordsFile:        filepath.Join(dir, "records.json"),
		ActivitiesFile:     filepath.Join(dir, "activities.json"),
		ProfilesFile:       filepath.Join(dir, "profiles.json"),
		AuthMode:           "local",
		AuthToken:          "test-token",
		AuthUserID:         "local",
		ReflectionProvider: "none",
	}
}

func TestSetup_ServesHealth(t *testing.T) {
	srv, store, err := setup(context.Background(), testConfig(t), internal.NewNopLogger())
	require.NoError(t, err)
	defer store.Close()

	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetup_ReflectionErrorOpensNoStorage(t *testing.T) {
	cfg := testConfig(t)
	cfg.ReflectionProvider = "gemini"

	srv, store, err := setup(context.Background(), cfg, internal.NewNopLogger())
	assert.Error(t, err)
	assert.Nil(t, srv)
	assert.True(t, store == nil)
}

func TestSetup_StorageErrorReturnsNilStore(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.RecordsFile, []byte("{not json"), 0o644))

	srv, store, err := setup(context.Background(), cfg, internal.NewNopLogger())
	assert.Error(t, err)
	assert.Nil(t, srv)
	assert.True(t, store == nil)
}
