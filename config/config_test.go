package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredflow/workflow"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "asc", cfg.Output.SortDirection)
	assert.Equal(t, "title", cfg.Output.SortField)
	assert.Empty(t, cfg.Options())
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
server:
  addr: ":9090"
  request_timeout: 2s
  cache_ttl: 1m
output:
  sort_direction: desc
  sort_field: uid
  sorted: true
  strict: true
bookmarks:
  entries:
    - title: Go docs
      url: https://go.dev/doc
    - title: Home
      url: file:///Users/me
      type: file
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Server.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout, "unset fields keep defaults")
	assert.Equal(t, "desc", cfg.Output.SortDirection)
	assert.Equal(t, "uid", cfg.Output.SortField)
	assert.True(t, cfg.Output.Sorted)
	assert.Len(t, cfg.Options(), 1)
	require.Len(t, cfg.Bookmarks.Entries, 2)
	assert.Equal(t, "file", cfg.Bookmarks.Entries[1].Type)
	assert.True(t, cfg.Calculator.Enabled)
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[server]
addr = "127.0.0.1:7000"
read_timeout = "3s"

[calculator]
enabled = false

[[bookmarks.entries]]
title = "Issues"
url = "https://github.com/issues"
uid = "issues"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Calculator.Enabled)
	require.Len(t, cfg.Bookmarks.Entries, 1)
	assert.Equal(t, "issues", cfg.Bookmarks.Entries[0].UID)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{name: "unsupported extension", file: "config.json", content: `{}`, wantErr: "unsupported config format"},
		{name: "malformed yaml", file: "config.yaml", content: "server: [", wantErr: "failed to parse"},
		{name: "bad direction", file: "config.yaml", content: "output:\n  sort_direction: up\n", wantErr: "sort_direction"},
		{name: "negative timeout", file: "config.toml", content: "[server]\nidle_timeout = \"-1s\"\n", wantErr: "server.idle_timeout"},
		{name: "bookmark without title", file: "config.yaml", content: "bookmarks:\n  entries:\n    - url: x\n", wantErr: "title is required"},
		{name: "strict unknown sort field", file: "config.yaml", content: "output:\n  strict: true\n  sort_field: mods\n", wantErr: "output.sort_field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidDirectionWrapsSentinel(t *testing.T) {
	_, err := Load(writeConfig(t, "c.yml", "output:\n  sort_direction: sideways\n"))
	assert.ErrorIs(t, err, workflow.ErrInvalidDirection)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ALFREDFLOW_ADDR", ":1234")
	t.Setenv("ALFREDFLOW_SORT", "desc")
	t.Setenv("ALFREDFLOW_SORT_FIELD", "subtitle")
	t.Setenv("ALFREDFLOW_STRICT", "yes")

	cfg, err := Load(writeConfig(t, "config.yaml", "server:\n  addr: \":9999\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":1234", cfg.Server.Addr)
	assert.Equal(t, "desc", cfg.Output.SortDirection)
	assert.True(t, cfg.Output.Sorted)
	assert.Equal(t, "subtitle", cfg.Output.SortField)
	assert.True(t, cfg.Output.Strict)
}

func TestLoadWithDefaults_ExplicitPath(t *testing.T) {
	cfg, err := LoadWithDefaults(writeConfig(t, "config.yaml", "calculator:\n  icon: calc.png\n"))
	require.NoError(t, err)
	assert.Equal(t, "calc.png", cfg.Calculator.Icon)
}

func TestLoadWithDefaults_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadWithDefaults("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Server, cfg.Server)
}
