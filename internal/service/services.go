package service

import (
	"github.com/statikk/ddmirror/internal/datadragon"
	"github.com/statikk/ddmirror/internal/repository"
	"github.com/statikk/ddmirror/internal/task"
)

// Services bundles every service for handler wiring.
type Services struct {
	Sync          *SyncService
	Champion      *ChampionService
	Item          *ItemService
	Rune          *RuneService
	SummonerSpell *SummonerSpellService
}

func NewServices(repos *repository.Repositories, dragon *datadragon.Client, runner task.Runner) *Services {
	return &Services{
		Sync:          NewSyncService(repos, dragon, runner),
		Champion:      NewChampionService(repos.Champion),
		Item:          NewItemService(repos.Item),
		Rune:          NewRuneService(repos.Rune),
		SummonerSpell: NewSummonerSpellService(repos.SummonerSpell),
	}
}
