package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstNonZeroWins verifies that an earlier source keeps its value
// and later sources only fill gaps.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{HashKey: "env-key"}},
		&StructuredConfig{App: App{HashKey: "flag-key", TokenIssuer: "flag-issuer"}},
		&StructuredConfig{Server: Server{RequestTimeout: time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.HashKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

// ── withJSON / withDefaults ───────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFirstPath(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"hash_key": "json-key"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.App.HashKey)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

func TestWithDefaults_FillsOnlyGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Log: Log{Level: "debug"}})

	cfg, err := b.withDefaults(&StructuredConfig{Log: Log{Level: "info", File: "vault.log"}}).build()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "vault.log", cfg.Log.File)
}

func TestWithDefaults_Nil(t *testing.T) {
	b := newConfigBuilder().withDefaults(nil)
	assert.Empty(t, b.configs)
}
