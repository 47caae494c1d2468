package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempDotenv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── NewSourceBuilder ──────────────────────────────────────────────────────────

// TestNewSourceBuilder_InitialState verifies that a freshly created builder
// has no error and no layers.
func TestNewSourceBuilder_InitialState(t *testing.T) {
	b := NewSourceBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

// ── Build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no layers returns an
// empty source.
func TestBuild_EmptyBuilder(t *testing.T) {
	src, err := NewSourceBuilder().Build()
	require.NoError(t, err)
	assert.Empty(t, src)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with a nil source.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := NewSourceBuilder()
	b.err = assert.AnError

	src, err := b.Build()
	assert.Nil(t, src)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersWin verifies the merge order.
func TestBuild_LaterLayersWin(t *testing.T) {
	src, err := NewSourceBuilder().
		WithOverrides(map[string]string{"PORT": "8080", "HOST": "0"}).
		WithOverrides(map[string]string{"PORT": "9090", "APP_URI": "api"}).
		Build()

	require.NoError(t, err)
	assert.Equal(t, MapSource{"PORT": "9090", "HOST": "0", "APP_URI": "api"}, src)
}

// TestBuild_DoesNotMutateLayers verifies that merging copies values out of
// the layers instead of writing into the first one.
func TestBuild_DoesNotMutateLayers(t *testing.T) {
	first := map[string]string{"PORT": "8080"}

	_, err := NewSourceBuilder().
		WithOverrides(first).
		WithOverrides(map[string]string{"PORT": "9090"}).
		Build()

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"PORT": "8080"}, first)
}

// ── WithDotenv ────────────────────────────────────────────────────────────────

func TestWithDotenv_ReturnsBuilder(t *testing.T) {
	b := NewSourceBuilder()
	assert.Same(t, b, b.WithDotenv())
}

func TestWithDotenv_ReadsFile(t *testing.T) {
	path := writeTempDotenv(t, "# local settings\nDATABASE_URL=\"postgresql://u:p@h/db\"\nPORT=3000\n")

	src, err := NewSourceBuilder().WithDotenv(path).Build()

	require.NoError(t, err)
	assert.Equal(t, MapSource{"DATABASE_URL": "postgresql://u:p@h/db", "PORT": "3000"}, src)
}

func TestWithDotenv_MissingFile(t *testing.T) {
	b := NewSourceBuilder().WithDotenv(filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, b.err)
	assert.Empty(t, b.layers)
}

// TestWithDotenv_CollectsEveryError verifies that a failing file does not
// stop the following ones from being read.
func TestWithDotenv_CollectsEveryError(t *testing.T) {
	good := writeTempDotenv(t, "PORT=3000\n")

	b := NewSourceBuilder().WithDotenv(filepath.Join(t.TempDir(), "missing.env"), good)

	assert.Error(t, b.err)
	assert.Len(t, b.layers, 1)
}

// ── WithProcessEnv ────────────────────────────────────────────────────────────

func TestWithProcessEnv_OverridesDotenv(t *testing.T) {
	path := writeTempDotenv(t, "APP_URI=from-file\nENVCONFIG_FILE_ONLY=kept\n")
	t.Setenv("APP_URI", "from-process")

	src, err := NewSourceBuilder().WithDotenv(path).WithProcessEnv().Build()

	require.NoError(t, err)
	assert.Equal(t, "from-process", src["APP_URI"])
	assert.Equal(t, "kept", src["ENVCONFIG_FILE_ONLY"])
}

// ── WithOverrides ─────────────────────────────────────────────────────────────

func TestWithOverrides_IgnoresEmpty(t *testing.T) {
	b := NewSourceBuilder().WithOverrides(nil).WithOverrides(map[string]string{})
	assert.Empty(t, b.layers)
}

func TestWithOverrides_OverridesProcessEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	src, err := NewSourceBuilder().
		WithProcessEnv().
		WithOverrides(map[string]string{"APP_ENV": "test"}).
		Build()

	require.NoError(t, err)
	env, err := ResolveEnvironment(src)
	require.NoError(t, err)
	assert.Equal(t, EnvironmentTest, env)
}
