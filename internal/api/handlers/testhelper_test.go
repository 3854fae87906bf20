package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"

	"blogsmith/internal/ai"
	"blogsmith/internal/models"
	"blogsmith/internal/storage"
)

// newTestStore creates an in-memory SQLite store with migrations applied.
// It registers a cleanup function to close the database when the test
// completes.
func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	db, err := storage.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := storage.RunMigrations(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	return storage.NewStore(db)
}

// fakeGenerator is a test double for ai.Generator. Titles present in
// failTitles fail with a GenerationError; everything else succeeds with
// deterministic content.
type fakeGenerator struct {
	failTitles map[string]bool
	calls      []string
}

func (g *fakeGenerator) GenerateArticle(_ context.Context, title string, tone models.Tone) (ai.Result, error) {
	g.calls = append(g.calls, title)
	if g.failTitles[title] {
		return ai.Result{}, &ai.GenerationError{Provider: "fake", Err: fmt.Errorf("connection refused")}
	}
	return ai.Result{
		Content: fmt.Sprintf("# %s\n\nGenerated body in %s tone.", title, tone),
		Model:   "fake-model",
	}, nil
}

// seedArticle inserts a test article and returns its ID.
func seedArticle(t *testing.T, store *storage.Store, title string, tone models.Tone, content string) int64 {
	t.Helper()
	id, err := store.CreateArticle(context.Background(), title, tone, content, "fake-model")
	if err != nil {
		t.Fatalf("seeding article: %v", err)
	}
	return id
}

// withURLParam returns a request whose chi route context carries the given
// URL parameter, as if it had been routed through the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// requestWithID is a shorthand for building a request carrying an "id"
// URL parameter.
func requestWithID(method, target string, id int64) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	return withURLParam(r, "id", strconv.FormatInt(id, 10))
}
