package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SearchMode
		wantErr bool
	}{
		{name: "sparse", input: "sparse", want: ModeSparse},
		{name: "dense", input: "dense", want: ModeDense},
		{name: "mixed case", input: "Dense", want: ModeDense},
		{name: "surrounding space", input: "  sparse ", want: ModeSparse},
		{name: "unknown", input: "hybrid", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseSearchMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
			assert.True(t, mode.Valid())
		})
	}
}

func TestSearchMode_Description(t *testing.T) {
	assert.Equal(t, "sparse vector (ELSER)", ModeSparse.Description())
	assert.Equal(t, "dense vector (E5)", ModeDense.Description())
	assert.Equal(t, "unknown", SearchMode("bm25").Description())
}

func TestNewSearchRequest_Defaults(t *testing.T) {
	req := NewSearchRequest("  love  ", nil)

	assert.Equal(t, "love", req.Query)
	assert.NotNil(t, req.SelectedPlays)
	assert.Empty(t, req.SelectedPlays)
	assert.Equal(t, DefaultFrom, req.From)
	assert.Equal(t, DefaultPageSize, req.Size)
}

func TestNewSearchRequest_CopiesPlays(t *testing.T) {
	plays := []string{"Hamlet", "Othello"}
	req := NewSearchRequest("love", plays)

	plays[0] = "Macbeth"

	assert.Equal(t, []string{"Hamlet", "Othello"}, req.SelectedPlays)
}

// The request body is part of the wire contract with the search
// service and must serialise exactly.
func TestSearchRequest_WireFormat(t *testing.T) {
	req := NewSearchRequest("love", nil)

	data, err := json.Marshal(req)
	require.NoError(t, err)

	assert.JSONEq(t, `{"query":"love","selected_plays":[],"from":0,"size":20}`, string(data))
	// Empty play list must encode as [] rather than null.
	assert.Contains(t, string(data), `"selected_plays":[]`)
}

func TestHit_SpeakerLabel(t *testing.T) {
	withSpeaker := Hit{Speaker: "Iago"}
	assert.Equal(t, "Iago", withSpeaker.SpeakerLabel())

	narration := Hit{TextEntry: "Enter HAMLET"}
	assert.Equal(t, NarrativeSpeaker, narration.SpeakerLabel())
}

func TestHit_Snippet(t *testing.T) {
	highlighted := Hit{
		TextEntry: "To be, or not to be",
		Highlight: []string{"To <mark>be</mark>, or not to be"},
	}
	assert.Equal(t, "To <mark>be</mark>, or not to be", highlighted.Snippet())

	plain := Hit{TextEntry: "To be, or not to be"}
	assert.Equal(t, "To be, or not to be", plain.Snippet())
}

func TestSearchResponse_Decode(t *testing.T) {
	body := `{
		"total": 2,
		"hits": [
			{"line_id": 1, "play_name": "Hamlet", "text_entry": "To be"},
			{"line_id": 2, "play_name": "Othello", "speaker": "Iago", "text_entry": "I hate"}
		],
		"aggregations": {"plays": [{"name": "Hamlet", "count": 1}, {"name": "Othello", "count": 1}]},
		"elasticsearch_query": {"query": {"match_all": {}}}
	}`

	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, 2, resp.Total)
	assert.False(t, resp.Empty())
	require.Len(t, resp.Hits, 2)
	assert.Equal(t, "Hamlet", resp.Hits[0].PlayName)
	assert.Equal(t, NarrativeSpeaker, resp.Hits[0].SpeakerLabel())
	assert.Equal(t, "Iago", resp.Hits[1].SpeakerLabel())
	require.Len(t, resp.Aggregations.Plays, 2)
	assert.Equal(t, FacetCount{Name: "Othello", Count: 1}, resp.Aggregations.Plays[1])
	assert.NotEmpty(t, resp.BackendQuery)
}

func TestSearchResponse_PrettyBackendQuery(t *testing.T) {
	resp := SearchResponse{BackendQuery: json.RawMessage(`{"query":{"match_all":{}}}`)}

	pretty := resp.PrettyBackendQuery()

	assert.Contains(t, pretty, "\n")
	assert.Contains(t, pretty, `"match_all"`)

	empty := SearchResponse{}
	assert.Equal(t, "", empty.PrettyBackendQuery())
}

func TestPlayLine_SpeakerLabel(t *testing.T) {
	assert.Equal(t, "HAMLET", PlayLine{Speaker: "HAMLET"}.SpeakerLabel())
	assert.Equal(t, NarrativeSpeaker, PlayLine{}.SpeakerLabel())
}
