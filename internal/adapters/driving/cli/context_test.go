package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

func contextLines() []domain.PlayLine {
	return []domain.PlayLine{
		{LineID: 41, PlayName: "Hamlet", Speaker: "HAMLET", TextEntry: "before"},
		{LineID: 42, PlayName: "Hamlet", Speaker: "HAMLET", TextEntry: "To be, or not to be", IsCurrent: true},
		{LineID: 43, PlayName: "Hamlet", TextEntry: "Exit."},
	}
}

func TestContextCmd_Use(t *testing.T) {
	assert.Equal(t, "context [line-id]", contextCmd.Use)
}

func TestContextCmd_RequiresLineID(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"context"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestContextCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	contextService.(*mockContextService).lines = contextLines()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"context", "42"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Hamlet")
	assert.Contains(t, out, "> [42]")
	assert.Contains(t, out, "To be, or not to be")
	// A line without a speaker falls back to the narrative label.
	assert.Contains(t, out, "Narrative")
}

func TestContextCmd_NonNumericLineID(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"context", "forty-two"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContextCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	contextService.(*mockContextService).err = domain.ErrNotFound

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"context", "99999"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 99999 not found")
}

func TestContextCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { contextJSON = false }()

	contextService.(*mockContextService).lines = contextLines()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"context", "--json", "42"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"line_id"`)
	assert.Contains(t, buf.String(), `"is_current"`)
}
