package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"blogsmith/internal/models"
	"blogsmith/internal/storage"
)

// ListArticlesJSON handles GET /api/articles. It returns all stored
// articles as JSON, most recently updated first.
func ListArticlesJSON(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := store.ListArticles(r.Context())
		if err != nil {
			slog.Error("failed to list articles", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to list articles")
			return
		}

		if articles == nil {
			articles = []models.Article{}
		}

		writeJSON(w, http.StatusOK, articles)
	}
}

// GetArticleJSON handles GET /api/articles/{id}. It returns a single
// article as JSON.
func GetArticleJSON(store *storage.Store) http.HandlerFunc {
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

		writeJSON(w, http.StatusOK, article)
	}
}
