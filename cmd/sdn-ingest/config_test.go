package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCLIConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := loadCLIConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultCLIConfig(), cfg)
}

func TestLoadCLIConfig_OverridesFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 5\nlimit: 25\nworkers: 4\nformat: json\n"), 0o644))

	cfg, err := loadCLIConfig(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Threshold)
	require.Equal(t, 25, cfg.Limit)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, "json", cfg.Format)
}

func TestLoadCLIConfig_MissingFileErrors(t *testing.T) {
	_, err := loadCLIConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
	var loadErr *configLoadError
	require.ErrorAs(t, err, &loadErr)
}
