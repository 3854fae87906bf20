package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"blogsmith/internal/ai"
	"blogsmith/internal/models"
	"blogsmith/internal/storage"
	"blogsmith/internal/titles"
)

// Generate handles POST /generate. It parses the submitted batch of titles,
// invokes the generation client once per title in submission order, persists
// each successful result, and redirects to the listing page.
//
// A failed generation for one title does not abort the rest of the batch:
// the title is skipped and reported as a warning on the listing page. Batch
// validation failures (empty input, more than ten titles, unknown tone)
// reject the whole batch and create nothing.
func Generate(store *storage.Store, generator ai.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid form data")
			return
		}

		parsed, err := titles.Parse(r.PostFormValue("titles"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		tone, err := models.ParseTone(r.PostFormValue("tone"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if generator == nil {
			writeError(w, http.StatusServiceUnavailable,
				"Article generation is not configured. Add your API key to config.toml")
			return
		}

		// Process titles strictly in order; one API call per title, one
		// insert per success.
		var warnings []string
		created := 0
		for _, title := range parsed {
			result, err := generator.GenerateArticle(ctx, title, tone)
			if err != nil {
				slog.Warn("article generation failed", "title", title, "error", err)
				warnings = append(warnings, fmt.Sprintf("Failed to generate %q: %v", title, err))
				continue
			}

			if _, err := store.CreateArticle(ctx, title, tone, result.Content, result.Model); err != nil {
				slog.Error("failed to persist article", "title", title, "error", err)
				warnings = append(warnings, fmt.Sprintf("Failed to save %q: %v", title, err))
				continue
			}
			created++
		}

		q := url.Values{}
		q.Set("message", fmt.Sprintf("Generated %d of %d article(s).", created, len(parsed)))
		for _, warning := range warnings {
			q.Add("warning", warning)
		}

		http.Redirect(w, r, "/articles?"+q.Encode(), http.StatusSeeOther)
	}
}
