package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/statikk/ddmirror/internal/domain"
	"gorm.io/gorm"
)

type summonerSpellRepository struct {
	db *gorm.DB
}

func NewSummonerSpellRepository(db *gorm.DB) *summonerSpellRepository {
	return &summonerSpellRepository{db: db}
}

func (r *summonerSpellRepository) ReplaceAll(ctx context.Context, spells []*domain.SummonerSpell) (domain.UpsertResult, error) {
	var res domain.UpsertResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []idChecksum
		if err := tx.Model(&domain.SummonerSpell{}).Select("id", "checksum").Find(&existing).Error; err != nil {
			return err
		}
		stored := make(map[string]string, len(existing))
		for _, row := range existing {
			stored[row.ID] = row.Checksum
		}

		incoming := make(map[string]bool, len(spells))
		for _, s := range spells {
			incoming[s.ID] = true
			old, ok := stored[s.ID]
			switch {
			case !ok:
				if err := tx.Create(s).Error; err != nil {
					return err
				}
				res.Inserted++
			case old != s.Checksum:
				if err := tx.Save(s).Error; err != nil {
					return err
				}
				res.Updated++
			}
		}

		stale := staleIDs(stored, incoming)
		if len(stale) > 0 {
			if err := tx.Delete(&domain.SummonerSpell{}, "id IN ?", stale).Error; err != nil {
				return err
			}
			res.Removed = len(stale)
		}
		return nil
	})
	if err != nil {
		return domain.UpsertResult{}, fmt.Errorf("%w: %v", domain.ErrWriteConflict, err)
	}
	return res, nil
}

func (r *summonerSpellRepository) GetAll(ctx context.Context) ([]*domain.SummonerSpell, error) {
	var spells []*domain.SummonerSpell
	err := r.db.WithContext(ctx).Order("name ASC").Find(&spells).Error
	if err != nil {
		return nil, err
	}
	return spells, nil
}

func (r *summonerSpellRepository) GetByID(ctx context.Context, id string) (*domain.SummonerSpell, error) {
	var spell domain.SummonerSpell
	err := r.db.WithContext(ctx).First(&spell, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSummonerSpellNotFound
	}
	if err != nil {
		return nil, err
	}
	return &spell, nil
}
