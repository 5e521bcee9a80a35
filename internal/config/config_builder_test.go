// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// requiredConfig carries the values defaults cannot provide.
func requiredConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage:  Storage{DB: DB{DSN: "postgres://localhost/orders"}},
		Firebase: Firebase{ProjectID: "demo-project"},
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that defaults alone do not pass validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_AppliesDefaults verifies that zero fields are filled from
// defaultConfig.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, requiredConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 120*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, IdentityProviderFirebase, cfg.App.IdentityProvider)
	assert.Equal(t, EmailProviderLog, cfg.Email.Provider)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.App.IsProduction())
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		requiredConfig(),
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Environment: EnvironmentProduction}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.True(t, cfg.App.IsProduction())
}

// TestBuild_LaterConfigWins verifies override order.
func TestBuild_LaterConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		requiredConfig(),
		&StructuredConfig{Server: Server{HTTPAddress: ":1111"}},
		&StructuredConfig{Server: Server{HTTPAddress: ":2222"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ":2222", cfg.Server.HTTPAddress)
}

// TestBuild_ZeroFieldDoesNotOverride verifies that an empty value in a later
// source keeps the earlier one.
func TestBuild_ZeroFieldDoesNotOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		requiredConfig(),
		&StructuredConfig{App: App{Version: "keep"}},
		&StructuredConfig{},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "keep", cfg.App.Version)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv(nil))
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv([]string{"APP_VERSION=env-version", "EMAIL_FROM=a@b.c"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "a@b.c", b.configs[0].Email.From)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a malformed value sets b.err
// and appends nothing.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv([]string{"APP_SESSION_DURATION=forever"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Len(t, b.configs, 1)
}

// TestWithFlags_SetsErrorOnBadFlag verifies error accumulation.
func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "nonsense"})
	assert.Error(t, b.err)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no config has a ConfigFilePath.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithFile_AppendsConfig_WhenValidFile verifies that a valid file is
// parsed and appended.
func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"app":{"version":"json-version"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		ConfigFilePath: "/nonexistent/config.json",
	})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_UsesLastPath verifies that when multiple configs have a
// ConfigFilePath, the last non-empty one wins.
func TestWithFile_UsesLastPath(t *testing.T) {
	first := writeTempFile(t, "first.yaml", "app:\n  version: first\n")
	last := writeTempFile(t, "last.yaml", "app:\n  version: last-wins\n")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: first},
		&StructuredConfig{ConfigFilePath: last},
		&StructuredConfig{ConfigFilePath: ""},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "last-wins", b.configs[3].App.Version)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestBuilder_FileOverridesFlagsAndEnv verifies the documented priority.
func TestBuilder_FileOverridesFlagsAndEnv(t *testing.T) {
	path := writeTempFile(t, "config.yaml", `
server:
  address: ":7000"
storage:
  db:
    dsn: postgres://file/db
`)

	cfg, err := newConfigBuilder().
		withEnv([]string{
			"CONFIG=" + path,
			"SERVER_ADDRESS=:5000",
			"FIREBASE_PROJECT_ID=env-project",
		}).
		withFlags([]string{"-a", ":6000", "-d", "postgres://flags/db"}).
		withFile().
		build()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://file/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-project", cfg.Firebase.ProjectID)
}
