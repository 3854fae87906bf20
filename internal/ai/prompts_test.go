package ai

import (
	"strings"
	"testing"

	"blogsmith/internal/models"
)

func TestArticlePrompt_NeutralOmitsToneClause(t *testing.T) {
	systemPrompt, userPrompt := ArticlePrompt("Remote work tips", models.ToneNeutral)

	if strings.Contains(systemPrompt, "tone.") {
		t.Errorf("neutral system prompt should not carry a tone instruction: %q", systemPrompt)
	}
	if userPrompt != "Topic: Remote work tips" {
		t.Errorf("userPrompt = %q, want topic line", userPrompt)
	}
}

func TestArticlePrompt_ToneClause(t *testing.T) {
	tests := []struct {
		tone models.Tone
		want string
	}{
		{models.ToneFormal, "Write in a formal tone."},
		{models.ToneConversational, "Write in a conversational tone."},
		{models.ToneTechnical, "Write in a technical tone."},
	}

	for _, tt := range tests {
		t.Run(string(tt.tone), func(t *testing.T) {
			systemPrompt, _ := ArticlePrompt("Some topic", tt.tone)
			if !strings.Contains(systemPrompt, tt.want) {
				t.Errorf("system prompt missing %q:\n%s", tt.want, systemPrompt)
			}
		})
	}
}

func TestArticlePrompt_TrimsTitle(t *testing.T) {
	_, userPrompt := ArticlePrompt("  Padded title \n", models.ToneNeutral)
	if userPrompt != "Topic: Padded title" {
		t.Errorf("userPrompt = %q, want trimmed topic", userPrompt)
	}
}

func TestArticlePrompt_RequestsArticleStructure(t *testing.T) {
	systemPrompt, _ := ArticlePrompt("Any topic", models.ToneNeutral)

	for _, want := range []string{"600-800 words", "introduction", "headings", "conclusion", "Markdown"} {
		if !strings.Contains(systemPrompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
