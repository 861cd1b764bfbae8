package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/statikk/ddmirror/internal/api/handlers"
	"github.com/statikk/ddmirror/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	syncHandler := handlers.NewSyncHandler(services.Sync)
	championHandler := handlers.NewChampionHandler(services.Champion)
	itemHandler := handlers.NewItemHandler(services.Item)
	runeHandler := handlers.NewRuneHandler(services.Rune)
	spellHandler := handlers.NewSummonerSpellHandler(services.SummonerSpell)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/sync", func(r chi.Router) {
			r.Get("/status", syncHandler.Status)
			r.Post("/all", syncHandler.SyncAll)
			r.Post("/{entityType}", syncHandler.SyncOne)
		})

		r.Route("/champions", func(r chi.Router) {
			r.Get("/", championHandler.GetAll)
			r.Get("/{id}", championHandler.Get)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemHandler.List)
			r.Get("/{id}", itemHandler.Get)
			r.Get("/{id}/recipe", itemHandler.Recipe)
		})

		r.Route("/runes", func(r chi.Router) {
			r.Get("/", runeHandler.Tree)
			r.Get("/search", runeHandler.Search)
			r.Get("/paths/{id}", runeHandler.GetPath)
		})

		r.Route("/summoner-spells", func(r chi.Router) {
			r.Get("/", spellHandler.GetAll)
			r.Get("/{id}", spellHandler.Get)
		})
	})

	return r
}
