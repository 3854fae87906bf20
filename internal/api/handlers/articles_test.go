package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogsmith/internal/models"
)

func TestListArticlesJSON(t *testing.T) {
	store := newTestStore(t)
	seedArticle(t, store, "First", models.ToneNeutral, "body one")
	seedArticle(t, store, "Second", models.ToneFormal, "body two")

	r := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	w := httptest.NewRecorder()

	ListArticlesJSON(store).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}

	var articles []models.Article
	if err := json.NewDecoder(w.Body).Decode(&articles); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
}

func TestListArticlesJSON_EmptyIsArray(t *testing.T) {
	store := newTestStore(t)

	r := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	w := httptest.NewRecorder()

	ListArticlesJSON(store).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Body.String(); got != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", got)
	}
}

func TestGetArticleJSON(t *testing.T) {
	store := newTestStore(t)
	id := seedArticle(t, store, "Target", models.ToneTechnical, "the body")

	w := httptest.NewRecorder()
	GetArticleJSON(store).ServeHTTP(w, requestWithID(http.MethodGet, "/api/articles/1", id))

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}

	var article models.Article
	if err := json.NewDecoder(w.Body).Decode(&article); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if article.ID != id || article.Title != "Target" || article.Content != "the body" {
		t.Errorf("unexpected article: %+v", article)
	}
}

func TestGetArticleJSON_NotFound(t *testing.T) {
	store := newTestStore(t)

	w := httptest.NewRecorder()
	GetArticleJSON(store).ServeHTTP(w, requestWithID(http.MethodGet, "/api/articles/7", 7))

	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusNotFound)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message in the response body")
	}
}
