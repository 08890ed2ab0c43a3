package history

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/messages"
	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// mockHistory implements driving.HistoryService for view tests.
type mockHistory struct {
	entries []domain.HistoryEntry
	listErr error
}

var _ driving.HistoryService = (*mockHistory)(nil)

func (m *mockHistory) Record(_ context.Context, _ domain.SearchMode, _ domain.SearchRequest, _ int) error {
	return nil
}

func (m *mockHistory) List(_ context.Context, _ int) ([]domain.HistoryEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.entries, nil
}

func (m *mockHistory) Clear(_ context.Context) error { return nil }

func sampleEntries() []domain.HistoryEntry {
	return []domain.HistoryEntry{
		{
			ID:            "b",
			Mode:          domain.ModeDense,
			Query:         "ambition",
			SelectedPlays: []string{"Macbeth"},
			Total:         4,
			CreatedAt:     time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        "a",
			Mode:      domain.ModeSparse,
			Query:     "",
			Total:     120,
			CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func loadView(t *testing.T, service driving.HistoryService) *View {
	t.Helper()

	v := NewView(nil, service)
	v.SetDimensions(100, 30)

	cmd := v.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(messages.HistoryLoaded)
	require.True(t, ok)

	v, _ = v.Update(loaded)
	return v
}

func TestHistoryView_ListsEntries(t *testing.T) {
	v := loadView(t, &mockHistory{entries: sampleEntries()})

	require.Len(t, v.Entries(), 2)

	out := v.View()
	assert.Contains(t, out, "ambition")
	assert.Contains(t, out, "plays: Macbeth")
	assert.Contains(t, out, "(match all)")
	assert.Contains(t, out, "120 matches")
}

func TestHistoryView_Empty(t *testing.T) {
	v := loadView(t, &mockHistory{})
	assert.Contains(t, v.View(), "No searches recorded")
}

func TestHistoryView_NilServiceLoadsEmpty(t *testing.T) {
	v := loadView(t, nil)
	assert.Empty(t, v.Entries())
	assert.NoError(t, v.Err())
}

func TestHistoryView_LoadError(t *testing.T) {
	v := loadView(t, &mockHistory{listErr: assert.AnError})

	require.Error(t, v.Err())
	assert.Contains(t, v.View(), assert.AnError.Error())
}

func TestHistoryView_EscReturnsToMenu(t *testing.T) {
	v := loadView(t, &mockHistory{entries: sampleEntries()})

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}
