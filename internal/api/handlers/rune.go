package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/service"
)

type RuneHandler struct {
	runeService *service.RuneService
}

func NewRuneHandler(runeService *service.RuneService) *RuneHandler {
	return &RuneHandler{runeService: runeService}
}

func (h *RuneHandler) Tree(w http.ResponseWriter, r *http.Request) {
	trees, err := h.runeService.Tree(r.Context())
	if err != nil {
		log.Printf("ERROR [rune.Tree]: %v", err)
		http.Error(w, "Failed to get rune tree", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, trees)
}

func (h *RuneHandler) GetPath(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid path ID", http.StatusBadRequest)
		return
	}

	tree, err := h.runeService.PathTreeByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRunePathNotFound) {
			http.Error(w, "Rune path not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [rune.GetPath] pathID=%d: %v", id, err)
		http.Error(w, "Failed to get rune path", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, tree)
}

func (h *RuneHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		http.Error(w, "Missing query parameter", http.StatusBadRequest)
		return
	}
	pathKey := r.URL.Query().Get("path_key")

	runes, err := h.runeService.Search(r.Context(), query, pathKey)
	if err != nil {
		log.Printf("ERROR [rune.Search] query=%s: %v", query, err)
		http.Error(w, "Failed to search runes", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"runes": runes,
		"count": len(runes),
	})
}
