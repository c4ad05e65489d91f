package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"scorebuddies/internal/kv"
)

func unsetEnv(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		// Setenv registers the restore; Unsetenv makes it absent for the test.
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "BASE_URL", "SCOREBUDDIES_STORE", "SCOREBUDDIES_DB", "SCOREBUDDIES_KEY", "LOG_LEVEL", "LOG_FORMAT", "SCOREBUDDIES_LANG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "", cfg.BaseURL)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "scorebuddies.db", cfg.DBPath)
	assert.Equal(t, "scorebuddies-game", cfg.Key)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, language.English, cfg.Language())
}

func TestLoad_Language(t *testing.T) {
	unsetEnv(t, "SCOREBUDDIES_STORE", "SCOREBUDDIES_KEY", "LOG_FORMAT")
	t.Setenv("SCOREBUDDIES_LANG", " sv ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, language.Swedish, cfg.Language())

	t.Setenv("SCOREBUDDIES_LANG", "not a tag!")
	_, err = Load()
	assert.ErrorContains(t, err, "SCOREBUDDIES_LANG")
}

func TestLoad_FromEnv(t *testing.T) {
	unsetEnv(t, "SCOREBUDDIES_DB")
	t.Setenv("PORT", ":9090")
	t.Setenv("BASE_URL", "https://scores.example.com/")
	t.Setenv("SCOREBUDDIES_STORE", "Memory")
	t.Setenv("SCOREBUDDIES_KEY", "family-night")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "https://scores.example.com", cfg.BaseURL)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "family-night", cfg.Key)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	unsetEnv(t, "SCOREBUDDIES_KEY", "LOG_FORMAT")
	t.Setenv("SCOREBUDDIES_STORE", "redis")
	_, err := Load()
	assert.ErrorContains(t, err, "unknown store")
}

func TestValidate(t *testing.T) {
	valid := Config{Store: StoreMemory, Key: "k", LogFormat: "json"}
	require.NoError(t, valid.Validate())

	noKey := valid
	noKey.Key = ""
	assert.Error(t, noKey.Validate())

	badFormat := valid
	badFormat.LogFormat = "xml"
	assert.Error(t, badFormat.Validate())

	noPath := Config{Store: StoreSQLite, Key: "k", LogFormat: "console"}
	assert.Error(t, noPath.Validate())
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	mem, err := OpenStore(ctx, Config{Store: StoreMemory})
	require.NoError(t, err)
	assert.IsType(t, &kv.Memory{}, mem)

	path := filepath.Join(t.TempDir(), "scores.db")
	db, err := OpenStore(ctx, Config{Store: StoreSQLite, DBPath: path})
	require.NoError(t, err)
	defer db.Close()
	assert.IsType(t, &kv.SQLite{}, db)

	_, err = OpenStore(ctx, Config{Store: "etcd"})
	assert.Error(t, err)
}
