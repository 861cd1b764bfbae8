package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/repository"
	"github.com/statikk/ddmirror/internal/service"
)

const (
	defaultItemLimit = 50
	maxItemLimit     = 200
)

type ItemHandler struct {
	itemService *service.ItemService
}

func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

type ItemsResponse struct {
	Items []*domain.Item `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.ItemFilter{
		Tag:             q.Get("tag"),
		PurchasableOnly: q.Get("purchasable_only") == "true",
		Limit:           defaultItemLimit,
		Page:            1,
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxItemLimit {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			http.Error(w, "Invalid page", http.StatusBadRequest)
			return
		}
		filter.Page = page
	}

	items, total, err := h.itemService.List(r.Context(), filter)
	if err != nil {
		log.Printf("ERROR [item.List]: %v", err)
		http.Error(w, "Failed to list items", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ItemsResponse{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	})
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.itemService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [item.Get] itemID=%s: %v", id, err)
		http.Error(w, "Failed to get item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Recipe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	depth := 3
	if raw := r.URL.Query().Get("depth"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "Invalid depth", http.StatusBadRequest)
			return
		}
		depth = parsed
	}

	tree, err := h.itemService.RecipeTree(r.Context(), id, depth)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [item.Recipe] itemID=%s: %v", id, err)
		http.Error(w, "Failed to build recipe tree", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, tree)
}
