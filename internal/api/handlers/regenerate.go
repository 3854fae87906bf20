package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"blogsmith/internal/ai"
	"blogsmith/internal/storage"
)

// Regenerate handles POST /articles/{id}/regenerate. It re-invokes the
// generation client with the article's stored title and tone and overwrites
// the content in place. On generation failure the stored row is left
// unchanged and the error is surfaced as a warning on the listing page.
func Regenerate(store *storage.Store, generator ai.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		article, err := store.GetArticleByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Article not found")
				return
			}
			slog.Error("failed to get article", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to load article")
			return
		}

		if generator == nil {
			writeError(w, http.StatusServiceUnavailable,
				"Article generation is not configured. Add your API key to config.toml")
			return
		}

		q := url.Values{}
		result, err := generator.GenerateArticle(ctx, article.Title, article.Tone)
		if err != nil {
			slog.Warn("article regeneration failed", "id", id, "title", article.Title, "error", err)
			q.Add("warning", fmt.Sprintf("Failed to regenerate %q: %v", article.Title, err))
			http.Redirect(w, r, "/articles?"+q.Encode(), http.StatusSeeOther)
			return
		}

		if err := store.UpdateArticleContent(ctx, id, result.Content, result.Model); err != nil {
			slog.Error("failed to update article content", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to save regenerated article")
			return
		}

		q.Set("message", fmt.Sprintf("Regenerated %q successfully.", article.Title))
		http.Redirect(w, r, "/articles?"+q.Encode(), http.StatusSeeOther)
	}
}
