package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/service"
)

type ChampionHandler struct {
	championService *service.ChampionService
}

func NewChampionHandler(championService *service.ChampionService) *ChampionHandler {
	return &ChampionHandler{championService: championService}
}

// ChampionSummary is the list row; the full record only ships from the
// detail endpoint.
type ChampionSummary struct {
	ID       string   `json:"id"`
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	ImageURL string   `json:"imageUrl"`
	Tags     []string `json:"tags"`
	Version  string   `json:"version"`
}

type ChampionsResponse struct {
	Champions []ChampionSummary `json:"champions"`
	Count     int               `json:"count"`
}

func (h *ChampionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	champions, err := h.championService.GetAll(r.Context())
	if err != nil {
		log.Printf("ERROR [champion.GetAll]: %v", err)
		http.Error(w, "Failed to get champions", http.StatusInternalServerError)
		return
	}

	resp := ChampionsResponse{
		Champions: make([]ChampionSummary, len(champions)),
		Count:     len(champions),
	}
	for i, c := range champions {
		var tags []string
		json.Unmarshal(c.Tags, &tags)

		resp.Champions[i] = ChampionSummary{
			ID:       c.ID,
			Key:      c.Key,
			Name:     c.Name,
			Title:    c.Title,
			ImageURL: c.ImageURL,
			Tags:     tags,
			Version:  c.Version,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ChampionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	champion, err := h.championService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrChampionNotFound) {
			http.Error(w, "Champion not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [champion.Get] championID=%s: %v", id, err)
		http.Error(w, "Failed to get champion", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, champion)
}
