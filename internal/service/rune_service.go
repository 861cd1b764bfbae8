package service

import (
	"context"

	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/repository"
)

type RuneService struct {
	runeRepo repository.RuneRepository
}

func NewRuneService(runeRepo repository.RuneRepository) *RuneService {
	return &RuneService{runeRepo: runeRepo}
}

// PathTree is one rune path with its runes regrouped by slot. Slot 0 holds
// the keystones; within a slot, runes keep their upstream order.
type PathTree struct {
	Path  *domain.RunePath `json:"path"`
	Slots [][]*domain.Rune `json:"slots"`
}

func (s *RuneService) GetAllPaths(ctx context.Context) ([]*domain.RunePath, error) {
	return s.runeRepo.GetAllPaths(ctx)
}

func (s *RuneService) GetPathByID(ctx context.Context, id int) (*domain.RunePath, error) {
	return s.runeRepo.GetPathByID(ctx, id)
}

// Tree rebuilds the full path -> slots -> runes structure from the flattened
// rows.
func (s *RuneService) Tree(ctx context.Context) ([]*PathTree, error) {
	paths, err := s.runeRepo.GetAllPaths(ctx)
	if err != nil {
		return nil, err
	}
	trees := make([]*PathTree, 0, len(paths))
	for _, path := range paths {
		runes, err := s.runeRepo.GetRunesByPath(ctx, path.ID)
		if err != nil {
			return nil, err
		}
		trees = append(trees, &PathTree{Path: path, Slots: groupBySlot(runes)})
	}
	return trees, nil
}

func (s *RuneService) PathTreeByID(ctx context.Context, id int) (*PathTree, error) {
	path, err := s.runeRepo.GetPathByID(ctx, id)
	if err != nil {
		return nil, err
	}
	runes, err := s.runeRepo.GetRunesByPath(ctx, path.ID)
	if err != nil {
		return nil, err
	}
	return &PathTree{Path: path, Slots: groupBySlot(runes)}, nil
}

// groupBySlot buckets rows already ordered by slot index and in-slot order.
func groupBySlot(runes []*domain.Rune) [][]*domain.Rune {
	slots := [][]*domain.Rune{}
	for _, rn := range runes {
		for len(slots) <= rn.SlotIndex {
			slots = append(slots, []*domain.Rune{})
		}
		slots[rn.SlotIndex] = append(slots[rn.SlotIndex], rn)
	}
	return slots
}

func (s *RuneService) Search(ctx context.Context, query, pathKey string) ([]*domain.Rune, error) {
	return s.runeRepo.Search(ctx, query, pathKey)
}
