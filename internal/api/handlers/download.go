package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"blogsmith/internal/storage"
)

// nonAlphanumeric matches runs of characters that are unsafe in filenames.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Download handles GET /articles/{id}/download. It streams the stored
// article content, byte for byte, as a plain-text attachment with a
// filename derived from the title.
func Download(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		article, err := store.GetArticleByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Article not found")
				return
			}
			slog.Error("failed to get article", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to load article")
			return
		}

		filename := downloadFilename(article.Title, time.Now().UTC())
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if _, err := w.Write([]byte(article.Content)); err != nil {
			slog.Warn("failed to stream article download", "id", id, "error", err)
		}
	}
}

// downloadFilename creates a filesystem-friendly .txt filename from an
// article title and a timestamp.
func downloadFilename(title string, now time.Time) string {
	safe := strings.Trim(nonAlphanumeric.ReplaceAllString(title, "-"), "-")
	if safe == "" {
		safe = "article"
	}
	return fmt.Sprintf("%s-%s.txt", safe, now.Format("20060102150405"))
}
