package hits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

func listResponse() *domain.SearchResponse {
	return &domain.SearchResponse{
		Total: 3,
		Hits: []domain.Hit{
			{LineID: 1, PlayName: "Hamlet", Speaker: "HAMLET", TextEntry: "To be, or not to be"},
			{LineID: 2, PlayName: "Macbeth", TextEntry: "Thunder and lightning. Enter three Witches"},
			{LineID: 3, PlayName: "Othello", Speaker: "IAGO", TextEntry: "I am not what I am"},
		},
	}
}

func TestHitList_SetResponse(t *testing.T) {
	list := NewHitList(nil)
	require.True(t, list.IsEmpty())

	list.SetResponse(listResponse())

	assert.Equal(t, 3, list.Count())
	assert.Equal(t, 3, list.Total())
	assert.Equal(t, 0, list.Selected())
}

func TestHitList_SetResponseNilClears(t *testing.T) {
	list := NewHitList(nil)
	list.SetResponse(listResponse())
	require.False(t, list.IsEmpty())

	list.SetResponse(nil)

	assert.True(t, list.IsEmpty())
	assert.Equal(t, 0, list.Total())
}

func TestHitList_Navigation(t *testing.T) {
	list := NewHitList(nil)
	list.SetResponse(listResponse())

	list.MoveDown()
	assert.Equal(t, 1, list.Selected())

	list.MoveDown()
	list.MoveDown()
	assert.Equal(t, 2, list.Selected(), "selection stops at the last hit")

	list.MoveUp()
	assert.Equal(t, 1, list.Selected())
}

func TestHitList_SelectedHit(t *testing.T) {
	list := NewHitList(nil)
	assert.Nil(t, list.SelectedHit())

	list.SetResponse(listResponse())
	list.MoveDown()

	hit := list.SelectedHit()
	require.NotNil(t, hit)
	assert.Equal(t, 2, hit.LineID)
}

func TestHitList_ViewShowsSpeakerAndNarrative(t *testing.T) {
	list := NewHitList(nil)
	list.SetDimensions(80, 20)
	list.SetResponse(listResponse())

	out := list.View()
	assert.Contains(t, out, "3 matches")
	assert.Contains(t, out, "HAMLET")
	assert.Contains(t, out, domain.NarrativeSpeaker)
}

func TestHitList_ViewEmpty(t *testing.T) {
	list := NewHitList(nil)
	assert.Contains(t, list.View(), "No matches")
}
