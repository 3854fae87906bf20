package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"blogsmith/internal/models"
	"blogsmith/internal/storage"
)

// previewLength is the maximum length of the content preview shown on
// article cards.
const previewLength = 150

// recentArticleCount is how many recently updated articles the landing page
// shows next to the input form.
const recentArticleCount = 3

// articleCard is the view model for one article on the listing and landing
// pages.
type articleCard struct {
	ID        int64
	Title     string
	Tone      models.Tone
	Preview   string
	UpdatedAt string
}

// indexPage is the view model for the landing page.
type indexPage struct {
	Tones    []models.Tone
	Recent   []articleCard
	Warnings []string
}

// listPage is the view model for the article listing page.
type listPage struct {
	Articles []articleCard
	Message  string
	Warnings []string
}

// articlePage is the view model for the article read view.
type articlePage struct {
	Article models.Article
	Body    template.HTML
}

// Index handles GET /. It renders the title input form together with the
// most recently updated articles.
func Index(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recent, err := store.ListRecentArticles(r.Context(), recentArticleCount)
		if err != nil {
			slog.Error("failed to list recent articles", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		renderPage(w, http.StatusOK, "index.html", indexPage{
			Tones:  models.Tones,
			Recent: toCards(recent),
		})
	}
}

// ListArticles handles GET /articles. It renders all stored articles, most
// recently updated first, along with any flash message and warnings carried
// over from a redirect.
func ListArticles(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := store.ListArticles(r.Context())
		if err != nil {
			slog.Error("failed to list articles", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		q := r.URL.Query()
		renderPage(w, http.StatusOK, "articles.html", listPage{
			Articles: toCards(articles),
			Message:  q.Get("message"),
			Warnings: q["warning"],
		})
	}
}

// ShowArticle handles GET /articles/{id}. It renders the full article with
// its Markdown content converted to HTML.
func ShowArticle(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		article, err := store.GetArticleByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Article not found", http.StatusNotFound)
				return
			}
			slog.Error("failed to get article", "id", id, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		renderPage(w, http.StatusOK, "article.html", articlePage{
			Article: *article,
			Body:    renderMarkdown(article.Content),
		})
	}
}

// toCards converts articles to their card view models.
func toCards(articles []models.Article) []articleCard {
	cards := make([]articleCard, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, articleCard{
			ID:        a.ID,
			Title:     a.Title,
			Tone:      a.Tone,
			Preview:   preview(a.Content, previewLength),
			UpdatedAt: a.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	return cards
}

// preview trims content to a short word-boundary preview for card layouts.
func preview(content string, limit int) string {
	if len(content) <= limit {
		return content
	}
	cut := content[:limit-1]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}
