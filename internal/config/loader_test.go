package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kferrors "github.com/keyfold/keyfold/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoaderDefaults(t *testing.T) {
	// No config file anywhere: defaults apply.
	loader := NewLoader()
	loader.searchPaths = []string{t.TempDir()}

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Output.LogLevel)
	assert.True(t, cfg.Output.Color)
	assert.False(t, cfg.Output.JSON)
	assert.Empty(t, cfg.Dictionaries)
}

func TestLoaderExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "keyfold.yaml", `
output:
  log_level: debug
  color: false
dictionaries:
  http-methods:
    get: GET
    post: POST
`)

	cfg, err := NewLoader().WithConfigPath(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Output.LogLevel)
	assert.False(t, cfg.Output.Color)
	require.Contains(t, cfg.Dictionaries, "http-methods")
	assert.Equal(t, "GET", cfg.Dictionaries["http-methods"]["get"])
}

func TestLoaderSearchPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keyfold.yaml", `
output:
  log_level: warn
`)

	loader := NewLoader()
	loader.searchPaths = []string{dir}

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Output.LogLevel)
}

func TestLoaderDictionaryFiles(t *testing.T) {
	dir := t.TempDir()
	dictPath := writeFile(t, dir, "units.yaml", `
css-units:
  px: length
  em: font-relative
  vw: viewport-relative
`)
	cfgPath := writeFile(t, dir, "keyfold.yaml", `
dictionary_files:
  - `+dictPath+`
dictionaries:
  css-units:
    px: absolute-length
`)

	cfg, err := NewLoader().WithConfigPath(cfgPath).Load()
	require.NoError(t, err)

	units := cfg.Dictionaries["css-units"]
	require.NotNil(t, units)
	// Inline entries win over file entries for the same key.
	assert.Equal(t, "absolute-length", units["px"])
	assert.Equal(t, "font-relative", units["em"])
	assert.Equal(t, "viewport-relative", units["vw"])
}

func TestLoaderMissingDictionaryFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "keyfold.yaml", `
dictionary_files:
  - `+filepath.Join(dir, "absent.yaml")+`
`)

	_, err := NewLoader().WithConfigPath(cfgPath).Load()
	require.Error(t, err)
	assert.True(t, kferrors.IsKind(err, kferrors.KindIO))
}

func TestLoaderRejectsUppercaseKeys(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "keyfold.yaml", `
dictionaries:
  methods:
    GET: get
`)

	_, err := NewLoader().WithConfigPath(cfgPath).Load()
	require.Error(t, err)
	assert.True(t, kferrors.IsKind(err, kferrors.KindValidation))
	assert.Contains(t, err.Error(), "uppercase ASCII")
}

func TestLoaderRejectsBadLogLevel(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "keyfold.yaml", `
output:
  log_level: loud
`)

	_, err := NewLoader().WithConfigPath(cfgPath).Load()
	require.Error(t, err)
	assert.True(t, kferrors.IsKind(err, kferrors.KindConfig))
}
