package domain

// DefaultContextSize is the number of lines fetched before and after
// a line when loading its surrounding context.
const DefaultContextSize = 50

// PlayLine is a single corpus line as stored in the index. It is used
// both for direct line lookup and for context windows around a hit.
type PlayLine struct {
	// LineID identifies the line within the corpus.
	LineID int `json:"line_id"`

	// PlayName is the play the line belongs to.
	PlayName string `json:"play_name"`

	// Speaker is the character speaking, empty for narration.
	Speaker string `json:"speaker,omitempty"`

	// TextEntry is the line text.
	TextEntry string `json:"text_entry"`

	// Type is the corpus entry type ("line", "scene", "act").
	Type string `json:"type,omitempty"`

	// IsCurrent marks the centre line of a context window.
	IsCurrent bool `json:"is_current,omitempty"`
}

// SpeakerLabel returns the speaker, or NarrativeSpeaker when the line
// has none.
func (l PlayLine) SpeakerLabel() string {
	if l.Speaker == "" {
		return NarrativeSpeaker
	}
	return l.Speaker
}
