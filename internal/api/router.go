package api

import (
	"github.com/go-chi/chi/v5"

	"blogsmith/internal/ai"
	"blogsmith/internal/api/handlers"
	"blogsmith/internal/storage"
)

// NewRouter creates and configures the HTTP router with the dashboard pages,
// the article actions, and the JSON API.
//
// The generator may be nil when no API key is configured; handlers that
// invoke generation answer 503 with a configuration message in that case.
func NewRouter(store *storage.Store, generator ai.Generator) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(RequestLogger)
	r.Use(Recovery)
	r.Use(CORS)

	// Dashboard pages and article actions.
	r.Get("/", handlers.Index(store))
	r.Post("/generate", handlers.Generate(store, generator))
	r.Get("/articles", handlers.ListArticles(store))
	r.Get("/articles/{id}", handlers.ShowArticle(store))
	r.Post("/articles/{id}/regenerate", handlers.Regenerate(store, generator))
	r.Get("/articles/{id}/download", handlers.Download(store))

	// JSON API sub-router.
	r.Route("/api", func(api chi.Router) {
		api.Get("/articles", handlers.ListArticlesJSON(store))
		api.Get("/articles/{id}", handlers.GetArticleJSON(store))
	})

	return r
}
