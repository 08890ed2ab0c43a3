package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/folio-cli/internal/adapters/driven/config/file"
)

func setupTestConfig(t *testing.T) func() {
	t.Helper()

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	old := configStore
	configStore = store
	return func() { configStore = old }
}

func TestConfigSetGet_RoundTrip(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", file.KeyBackendBaseURL, "http://search.local:5000"})
	defer func() { rootCmd.SetArgs(nil) }()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Set backend.base_url")

	buf.Reset()
	rootCmd.SetArgs([]string{"config", "get", file.KeyBackendBaseURL})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "http://search.local:5000")
}

func TestConfigGet_NotSet(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "get", file.KeyBackendBaseURL})
	defer func() { rootCmd.SetArgs(nil) }()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "(not set)")
}

func TestConfigGet_TokenNeverPrinted(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, configStore.Set(file.KeyBackendToken, "secret-token"))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "get", file.KeyBackendToken})
	defer func() { rootCmd.SetArgs(nil) }()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "(set)")
	assert.NotContains(t, buf.String(), "secret-token")
}

func TestConfigSet_InvalidMode(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", file.KeyDefaultMode, "hybrid"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "hybrid")
}

func TestConfigSet_PageSizeCoercedToInt(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", file.KeyPageSize, "40"})
	defer func() { rootCmd.SetArgs(nil) }()

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, 40, configStore.GetInt(file.KeyPageSize))
}

func TestConfigSet_InvalidPageSize(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", file.KeyPageSize, "zero"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "page size")
}

func TestConfigSet_MissingValueForPlainKey(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", file.KeyBackendBaseURL})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing value")
}

func TestConfigPathCmd(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "path"})
	defer func() { rootCmd.SetArgs(nil) }()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "config.toml")
}
