package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Workspace)
	assert.Equal(t, "contract-metadata.json", cfg.Output)
	assert.Equal(t, "", cfg.Network)
	assert.Equal(t, 0, cfg.Jobs)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "lib", cfg.EntryModule)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "soroscope.yaml"), []byte(`
output: build/metadata.json
network: testnet
jobs: 2
verbose: true
`), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "build/metadata.json", cfg.Output)
	assert.Equal(t, "testnet", cfg.Network)
	assert.Equal(t, 2, cfg.Jobs)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "lib", cfg.EntryModule, "unset keys keep their defaults")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "soroscope.yaml"), []byte("output: from-file.json\n"), 0o644))
	t.Setenv("SOROSCOPE_OUTPUT", "from-env.json")
	t.Setenv("SOROSCOPE_ENTRY_MODULE", "contract")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env.json", cfg.Output)
	assert.Equal(t, "contract", cfg.EntryModule)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "soroscope.yaml"), []byte("output: [unclosed\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadRejectsNegativeJobs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "soroscope.yaml"), []byte("jobs: -1\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
