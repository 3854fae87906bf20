package models

import (
	"fmt"
	"time"
)

// Tone selects the writing style used when generating article content.
type Tone string

// The set of supported tones. Neutral is the default and produces no
// explicit tone instruction in the generation prompt.
const (
	ToneNeutral        Tone = "Neutral"
	ToneFormal         Tone = "Formal"
	ToneConversational Tone = "Conversational"
	ToneTechnical      Tone = "Technical"
)

// Tones lists all supported tones in display order.
var Tones = []Tone{ToneNeutral, ToneFormal, ToneConversational, ToneTechnical}

// ParseTone validates a tone value supplied by a caller. An empty string
// defaults to Neutral. Unknown values return an error.
func ParseTone(s string) (Tone, error) {
	if s == "" {
		return ToneNeutral, nil
	}
	for _, t := range Tones {
		if s == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tone %q", s)
}

// Article represents one generated blog post. Content is produced by the
// generation client and is overwritten in full on every regeneration.
type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Tone      Tone      `json:"tone"`
	Content   string    `json:"content"`
	ModelUsed string    `json:"model_used,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
