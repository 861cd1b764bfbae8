package service

import (
	"context"

	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/repository"
)

type ChampionService struct {
	championRepo repository.ChampionRepository
}

func NewChampionService(championRepo repository.ChampionRepository) *ChampionService {
	return &ChampionService{championRepo: championRepo}
}

func (s *ChampionService) GetAll(ctx context.Context) ([]*domain.Champion, error) {
	return s.championRepo.GetAll(ctx)
}

func (s *ChampionService) GetByID(ctx context.Context, id string) (*domain.Champion, error) {
	return s.championRepo.GetByID(ctx, id)
}
