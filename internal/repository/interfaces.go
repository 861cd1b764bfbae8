package repository

import (
	"context"

	"github.com/statikk/ddmirror/internal/domain"
)

type VersionRepository interface {
	// Current returns the synced version for an entity type, or "" when the
	// type has never synced.
	Current(ctx context.Context, entityType domain.EntityType) (string, error)
	Set(ctx context.Context, entityType domain.EntityType, version string) error
	All(ctx context.Context) ([]*domain.GameVersion, error)
}

// ItemFilter narrows item listings. Zero value means no filtering.
type ItemFilter struct {
	Tag             string
	PurchasableOnly bool
	Limit           int
	Page            int
}

type ChampionRepository interface {
	// ReplaceAll reconciles the stored set against the batch inside one
	// transaction: new IDs insert, changed checksums update, absent IDs are
	// removed. Re-applying an identical batch is a no-op.
	ReplaceAll(ctx context.Context, champions []*domain.Champion) (domain.UpsertResult, error)
	GetAll(ctx context.Context) ([]*domain.Champion, error)
	GetByID(ctx context.Context, id string) (*domain.Champion, error)
}

type ItemRepository interface {
	ReplaceAll(ctx context.Context, items []*domain.Item) (domain.UpsertResult, error)
	List(ctx context.Context, filter ItemFilter) ([]*domain.Item, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Item, error)
}

type RuneRepository interface {
	// ReplaceAll reconciles paths and runes together; both tables commit or
	// roll back as one.
	ReplaceAll(ctx context.Context, paths []*domain.RunePath, runes []*domain.Rune) (domain.UpsertResult, error)
	GetAllPaths(ctx context.Context) ([]*domain.RunePath, error)
	GetPathByID(ctx context.Context, id int) (*domain.RunePath, error)
	GetRunesByPath(ctx context.Context, pathID int) ([]*domain.Rune, error)
	Search(ctx context.Context, query, pathKey string) ([]*domain.Rune, error)
}

type SummonerSpellRepository interface {
	ReplaceAll(ctx context.Context, spells []*domain.SummonerSpell) (domain.UpsertResult, error)
	GetAll(ctx context.Context) ([]*domain.SummonerSpell, error)
	GetByID(ctx context.Context, id string) (*domain.SummonerSpell, error)
}

type Repositories struct {
	Version       VersionRepository
	Champion      ChampionRepository
	Item          ItemRepository
	Rune          RuneRepository
	SummonerSpell SummonerSpellRepository
}
