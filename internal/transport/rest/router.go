package rest

import "net/http"

// Handlers groups the handler set wired into the router.
type Handlers struct {
	Health    *HealthHandler
	Words     *WordHandler
	Wordbooks *WordbookHandler
	Bookmarks *BookmarkHandler
	Users     *UserHandler
}

// NewRouter builds the ServeMux for the public API. Auth, logging, and the
// rest of the middleware chain wrap the returned handler in app.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/v1/words/enrich", h.Words.Enrich)
	mux.HandleFunc("POST /api/v1/cards", h.Words.CreateCard)
	mux.HandleFunc("DELETE /api/v1/cards/{id}", h.Words.DeleteCard)

	mux.HandleFunc("POST /api/v1/wordbooks", h.Wordbooks.Create)
	mux.HandleFunc("GET /api/v1/wordbooks", h.Wordbooks.ListMine)
	mux.HandleFunc("GET /api/v1/wordbooks/search", h.Wordbooks.Search)
	mux.HandleFunc("GET /api/v1/wordbooks/{id}", h.Wordbooks.Get)
	mux.HandleFunc("PATCH /api/v1/wordbooks/{id}", h.Wordbooks.Update)
	mux.HandleFunc("DELETE /api/v1/wordbooks/{id}", h.Wordbooks.Delete)
	mux.HandleFunc("POST /api/v1/wordbooks/{id}/duplicate", h.Wordbooks.Duplicate)
	mux.HandleFunc("GET /api/v1/wordbooks/{id}/cards", h.Words.ListCards)

	mux.HandleFunc("POST /api/v1/bookmarks", h.Bookmarks.Create)
	mux.HandleFunc("GET /api/v1/bookmarks", h.Bookmarks.List)
	mux.HandleFunc("DELETE /api/v1/bookmarks/{id}", h.Bookmarks.Delete)
	mux.HandleFunc("GET /api/v1/cards/{id}/bookmark", h.Bookmarks.Exists)
	mux.HandleFunc("DELETE /api/v1/cards/{id}/bookmark", h.Bookmarks.DeleteByCard)

	mux.HandleFunc("GET /api/v1/me", h.Users.GetProfile)
	mux.HandleFunc("PUT /api/v1/me", h.Users.UpdateProfile)
	mux.HandleFunc("GET /api/v1/me/settings", h.Users.GetSettings)
	mux.HandleFunc("PUT /api/v1/me/settings", h.Users.UpdateSettings)

	return mux
}
