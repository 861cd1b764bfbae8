package service

import (
	"context"

	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/repository"
)

type SummonerSpellService struct {
	spellRepo repository.SummonerSpellRepository
}

func NewSummonerSpellService(spellRepo repository.SummonerSpellRepository) *SummonerSpellService {
	return &SummonerSpellService{spellRepo: spellRepo}
}

func (s *SummonerSpellService) GetAll(ctx context.Context) ([]*domain.SummonerSpell, error) {
	return s.spellRepo.GetAll(ctx)
}

func (s *SummonerSpellService) GetByID(ctx context.Context, id string) (*domain.SummonerSpell, error) {
	return s.spellRepo.GetByID(ctx, id)
}
