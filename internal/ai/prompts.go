package ai

import (
	"fmt"
	"strings"

	"blogsmith/internal/models"
)

const articleSystemPrompt = `You are an expert marketing copywriter and SEO specialist. Generate a comprehensive blog article that is 600-800 words long. Include: a captivating introduction, multiple sections with h2/h3 headings, bulleted lists where helpful, actionable insights and examples, and a conclusion with a call to action. Return plain text that is readable as Markdown.`

// ArticlePrompt builds the system and user prompts for article generation.
// Non-Neutral tones add an explicit tone instruction; Neutral leaves the
// model's default register untouched.
func ArticlePrompt(title string, tone models.Tone) (systemPrompt string, userPrompt string) {
	systemPrompt = articleSystemPrompt
	if tone != "" && tone != models.ToneNeutral {
		systemPrompt += fmt.Sprintf(" Write in a %s tone.", strings.ToLower(string(tone)))
	}

	userPrompt = "Topic: " + strings.TrimSpace(title)
	return systemPrompt, userPrompt
}
