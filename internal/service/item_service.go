package service

import (
	"context"
	"encoding/json"

	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/repository"
)

const maxRecipeDepth = 5

type ItemService struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

func (s *ItemService) List(ctx context.Context, filter repository.ItemFilter) ([]*domain.Item, int64, error) {
	return s.itemRepo.List(ctx, filter)
}

func (s *ItemService) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

// RecipeNode is one level of an item's build tree. Component IDs that no
// longer resolve to a stored item land in Unresolved rather than vanishing.
type RecipeNode struct {
	Item       *domain.Item  `json:"item"`
	BuildsFrom []*RecipeNode `json:"buildsFrom"`
	Unresolved []string      `json:"unresolved,omitempty"`
}

// RecipeTree expands an item's components recursively. Depth is capped at 5;
// recipe chains never run that deep, and the cap bounds a cyclic build graph.
func (s *ItemService) RecipeTree(ctx context.Context, id string, depth int) (*RecipeNode, error) {
	if depth < 1 {
		depth = 1
	}
	if depth > maxRecipeDepth {
		depth = maxRecipeDepth
	}
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expandRecipe(ctx, item, depth)
}

func (s *ItemService) expandRecipe(ctx context.Context, item *domain.Item, depth int) (*RecipeNode, error) {
	node := &RecipeNode{Item: item, BuildsFrom: []*RecipeNode{}}
	if depth <= 1 {
		return node, nil
	}

	var componentIDs []string
	if err := json.Unmarshal(item.BuildsFrom, &componentIDs); err != nil || len(componentIDs) == 0 {
		return node, nil
	}

	components, err := s.itemRepo.GetByIDs(ctx, componentIDs)
	if err != nil {
		return nil, err
	}
	found := make(map[string]*domain.Item, len(components))
	for _, c := range components {
		found[c.ID] = c
	}

	for _, cid := range componentIDs {
		component, ok := found[cid]
		if !ok {
			node.Unresolved = append(node.Unresolved, cid)
			continue
		}
		child, err := s.expandRecipe(ctx, component, depth-1)
		if err != nil {
			return nil, err
		}
		node.BuildsFrom = append(node.BuildsFrom, child)
	}
	return node, nil
}
