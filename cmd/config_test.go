package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
prompt = "woc> "
color = false
timeout = "2s"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "woc> ", cfg.Prompt)
	assert.Equal(t, DefaultConfig().ContinuationPrompt, cfg.ContinuationPrompt)
	assert.False(t, cfg.Color)

	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)
}

func TestLoadConfigYAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.YML"} {
		path := writeConfig(t, name, `
continuation_prompt: "... "
history_file: /tmp/woc_history
`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ">> ", cfg.Prompt)
		assert.Equal(t, "... ", cfg.ContinuationPrompt)
		assert.Equal(t, "/tmp/woc_history", cfg.HistoryFile)
		assert.True(t, cfg.Color)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "bad.toml", "prompt = "))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "bad.yaml", "prompt: [1, 2"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "timeout.toml", `timeout = "soon"`))
	assert.ErrorContains(t, err, "invalid timeout")

	_, err = LoadConfig(writeConfig(t, "negative.toml", `timeout = "-1s"`))
	assert.ErrorContains(t, err, "must not be negative")
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "hist"), expandHome("~/hist"))
	assert.Equal(t, "/abs/hist", expandHome("/abs/hist"))
	assert.Equal(t, "rel~/hist", expandHome("rel~/hist"))
}
