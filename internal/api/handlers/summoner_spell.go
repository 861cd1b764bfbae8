package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/service"
)

type SummonerSpellHandler struct {
	spellService *service.SummonerSpellService
}

func NewSummonerSpellHandler(spellService *service.SummonerSpellService) *SummonerSpellHandler {
	return &SummonerSpellHandler{spellService: spellService}
}

func (h *SummonerSpellHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	spells, err := h.spellService.GetAll(r.Context())
	if err != nil {
		log.Printf("ERROR [summonerSpell.GetAll]: %v", err)
		http.Error(w, "Failed to get summoner spells", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"summonerSpells": spells,
		"count":          len(spells),
	})
}

func (h *SummonerSpellHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	spell, err := h.spellService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSummonerSpellNotFound) {
			http.Error(w, "Summoner spell not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [summonerSpell.Get] spellID=%s: %v", id, err)
		http.Error(w, "Failed to get summoner spell", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, spell)
}
