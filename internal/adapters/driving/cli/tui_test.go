package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
}

func TestTUICmd_Long(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "side by side")
	assert.Contains(t, tuiCmd.Long, "Tab")
}

func TestTUICmd_RequiresPanels(t *testing.T) {
	// No panels wired; the app constructor must reject the ports
	// before any terminal state is touched.
	oldSparse, oldDense := sparsePanel, densePanel
	sparsePanel, densePanel = nil, nil
	defer func() { sparsePanel, densePanel = oldSparse, oldDense }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"tui"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, tui.ErrMissingSparsePanel)
}
