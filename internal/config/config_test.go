package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_FileWithCatalog(t *testing.T) {
	path := writeConfig(t, `
base_url = "https://diagrams.internal"
api_key = "file-key"

[[sources]]
url = "https://docs.example.com/postgres"
name = "Postgres"
definition_id = "decd338e-5647-4c0b-adf4-da0e75f5a750"

[[sources]]
name = "MySQL"
definition_id = "435bb9a5-7887-4809-aa58-28c27df0d7ad"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://diagrams.internal", cfg.BaseURL)
	assert.Equal(t, "file-key", cfg.APIKey)
	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, "Postgres", cfg.Sources[0].Name)
	assert.Equal(t, "https://docs.example.com/postgres", cfg.Sources[0].URL)
	assert.Equal(t, "decd338e-5647-4c0b-adf4-da0e75f5a750", cfg.Sources[0].DefinitionID)
	assert.Empty(t, cfg.Sources[1].URL)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
base_url = "https://diagrams.internal"
api_key = "file-key"
`)

	t.Setenv("ERD_API_URL", "https://override.example.com")
	t.Setenv("ERD_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://override.example.com", cfg.BaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	t.Setenv("ERD_API_URL", "")
	t.Setenv("ERD_API_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)

	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.Sources)
}

func TestLoad_RejectsIncompleteSource(t *testing.T) {
	path := writeConfig(t, `
[[sources]]
url = "https://docs.example.com/postgres"
name = "Postgres"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, `base_url = `)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{BaseURL: "https://diagrams.internal", APIKey: "key"}
	assert.NoError(t, cfg.Validate())

	cfg.APIKey = ""
	assert.Error(t, cfg.Validate())

	cfg.APIKey = "key"
	cfg.BaseURL = ""
	assert.Error(t, cfg.Validate())
}

func TestSourceByName(t *testing.T) {
	path := writeConfig(t, `
[[sources]]
name = "Postgres"
definition_id = "decd338e"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	src, ok := cfg.SourceByName("Postgres")
	assert.True(t, ok)
	assert.Equal(t, "decd338e", src.DefinitionID)

	_, ok = cfg.SourceByName("Snowflake")
	assert.False(t, ok)
}
