package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blogsmith/internal/models"
)

func TestRegenerate_OverwritesContentOnly(t *testing.T) {
	store := newTestStore(t)
	gen := &fakeGenerator{}
	id := seedArticle(t, store, "Remote work tips", models.ToneFormal, "old content")

	// Push updated_at into the past so the refresh is observable.
	if _, err := store.DB().Exec(
		`UPDATE articles SET updated_at = datetime('now', '-1 hour') WHERE id = ?`, id,
	); err != nil {
		t.Fatalf("backdating article: %v", err)
	}
	before, err := store.GetArticleByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetArticleByID() error: %v", err)
	}

	w := httptest.NewRecorder()
	Regenerate(store, gen).ServeHTTP(w, requestWithID(http.MethodPost, "/articles/1/regenerate", id))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("got status %d, want %d; body: %s", w.Code, http.StatusSeeOther, w.Body.String())
	}

	after, err := store.GetArticleByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetArticleByID() error: %v", err)
	}

	if after.ID != id {
		t.Errorf("ID changed: got %d, want %d", after.ID, id)
	}
	if after.Title != "Remote work tips" {
		t.Errorf("Title changed: got %q", after.Title)
	}
	if after.Tone != models.ToneFormal {
		t.Errorf("Tone changed: got %q", after.Tone)
	}
	if after.Content == "old content" {
		t.Error("Content was not overwritten")
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("UpdatedAt not refreshed: before %v, after %v", before.UpdatedAt, after.UpdatedAt)
	}

	// The regenerate call uses the stored title and tone.
	if len(gen.calls) != 1 || gen.calls[0] != "Remote work tips" {
		t.Errorf("generator calls = %v, want the stored title", gen.calls)
	}
}

func TestRegenerate_NotFoundLeavesTableUnchanged(t *testing.T) {
	store := newTestStore(t)
	gen := &fakeGenerator{}
	seedArticle(t, store, "Existing", models.ToneNeutral, "body")

	w := httptest.NewRecorder()
	Regenerate(store, gen).ServeHTTP(w, requestWithID(http.MethodPost, "/articles/999/regenerate", 999))

	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusNotFound)
	}
	if len(gen.calls) != 0 {
		t.Errorf("generator was called %d times, want 0", len(gen.calls))
	}

	count, _ := store.CountArticles(context.Background())
	if count != 1 {
		t.Errorf("got %d articles, want 1", count)
	}
}

func TestRegenerate_FailureLeavesRowUnchanged(t *testing.T) {
	store := newTestStore(t)
	gen := &fakeGenerator{failTitles: map[string]bool{"Flaky topic": true}}
	id := seedArticle(t, store, "Flaky topic", models.ToneConversational, "original body")

	w := httptest.NewRecorder()
	Regenerate(store, gen).ServeHTTP(w, requestWithID(http.MethodPost, "/articles/1/regenerate", id))

	// Failure is surfaced as a warning on the listing page.
	if w.Code != http.StatusSeeOther {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusSeeOther)
	}
	loc, err := url.Parse(w.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parsing redirect location: %v", err)
	}
	warnings := loc.Query()["warning"]
	if len(warnings) != 1 || !strings.Contains(warnings[0], "Flaky topic") {
		t.Errorf("redirect warnings = %v, want one mentioning the title", warnings)
	}

	after, err := store.GetArticleByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetArticleByID() error: %v", err)
	}
	if after.Content != "original body" {
		t.Errorf("Content = %q, want original body preserved", after.Content)
	}
}

func TestRegenerate_UnconfiguredProviderAnswers503(t *testing.T) {
	store := newTestStore(t)
	id := seedArticle(t, store, "Some topic", models.ToneNeutral, "body")

	w := httptest.NewRecorder()
	Regenerate(store, nil).ServeHTTP(w, requestWithID(http.MethodPost, "/articles/1/regenerate", id))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	var content string
	if err := store.DB().QueryRow(`SELECT content FROM articles WHERE id = ?`, id).Scan(&content); err != nil && err != sql.ErrNoRows {
		t.Fatalf("querying article: %v", err)
	}
	if content != "body" {
		t.Errorf("content = %q, want unchanged", content)
	}
}
