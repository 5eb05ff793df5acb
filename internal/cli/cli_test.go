package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kferrors "github.com/keyfold/keyfold/internal/errors"
)

// execute resets the global CLI state and runs the root command with args.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cfgFile = ""
	verbose = false
	outputJSON = false
	noColor = false
	logLevel = ""
	cfg = nil

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keyfold.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLookupBuiltinColors(t *testing.T) {
	out, err := execute(t, "", "lookup", "css-colors", "RED", "Blue")
	require.NoError(t, err)
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "#0000ff")
}

func TestLookupMiss(t *testing.T) {
	out, err := execute(t, "", "lookup", "css-colors", "red", "purpleish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 keys not found")
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "no match")
}

func TestLookupJSON(t *testing.T) {
	out, err := execute(t, "", "lookup", "--json", "certificate-oids", "Common-Name")
	require.NoError(t, err)

	var report LookupReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "certificate-oids", report.Dictionary)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "2.5.4.3", report.Results[0].Value)
	assert.True(t, report.Results[0].Found)
	assert.Zero(t, report.Misses)
}

func TestLookupUnknownDictionary(t *testing.T) {
	_, err := execute(t, "", "lookup", "nope", "key")
	require.Error(t, err)
	assert.True(t, kferrors.IsKind(err, kferrors.KindNotFound))
}

func TestLookupConfiguredDictionary(t *testing.T) {
	path := writeConfig(t, `
dictionaries:
  http-methods:
    get: GET
    post: POST
`)

	out, err := execute(t, "", "--config", path, "lookup", "http-methods", "GeT")
	require.NoError(t, err)
	assert.Contains(t, out, "GET")
}

func TestLookupConfiguredShadowsBuiltin(t *testing.T) {
	path := writeConfig(t, `
dictionaries:
  css-colors:
    red: crimson-ish
`)

	out, err := execute(t, "", "--config", path, "lookup", "css-colors", "RED")
	require.NoError(t, err)
	assert.Contains(t, out, "crimson-ish")
	assert.NotContains(t, out, "#ff0000")
}

func TestFoldArgs(t *testing.T) {
	out, err := execute(t, "", "fold", "Background-Color", "GRÜSSE")
	require.NoError(t, err)
	assert.Equal(t, "background-color\ngrÜsse\n", out)
}

func TestFoldStdin(t *testing.T) {
	out, err := execute(t, "Mixed Case\nalready lower\n", "fold")
	require.NoError(t, err)
	assert.Equal(t, "mixed case\nalready lower\n", out)
}

func TestDicts(t *testing.T) {
	out, err := execute(t, "", "dicts", "--json")
	require.NoError(t, err)

	var infos []DictInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, "certificate-oids", infos[0].Name)
	assert.Equal(t, "css-colors", infos[1].Name)
	assert.Equal(t, "built-in", infos[0].Source)
	assert.Greater(t, infos[1].Entries, 100)
}

func TestDictsWithConfig(t *testing.T) {
	path := writeConfig(t, `
dictionaries:
  units:
    px: length
`)

	out, err := execute(t, "", "--config", path, "dicts", "--json")
	require.NoError(t, err)

	var infos []DictInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 3)

	byName := make(map[string]DictInfo)
	for _, info := range infos {
		byName[info.Name] = info
	}
	assert.Equal(t, "config", byName["units"].Source)
	assert.Equal(t, 1, byName["units"].Entries)
	assert.Equal(t, 2, byName["units"].MaxKeyLen)
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "keyfold 1.2.3")
	assert.Contains(t, out, "abc123")
}

func TestVersionFallback(t *testing.T) {
	SetVersionInfo("dev", "none", "unknown")
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "keyfold v0.1.0")
}

func TestLookupRequiresArgs(t *testing.T) {
	_, err := execute(t, "", "lookup", "css-colors")
	require.Error(t, err)
}
