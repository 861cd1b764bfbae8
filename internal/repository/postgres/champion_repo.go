package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/statikk/ddmirror/internal/domain"
	"gorm.io/gorm"
)

type championRepository struct {
	db *gorm.DB
}

func NewChampionRepository(db *gorm.DB) *championRepository {
	return &championRepository{db: db}
}

func (r *championRepository) ReplaceAll(ctx context.Context, champions []*domain.Champion) (domain.UpsertResult, error) {
	var res domain.UpsertResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []idChecksum
		if err := tx.Model(&domain.Champion{}).Select("id", "checksum").Find(&existing).Error; err != nil {
			return err
		}
		stored := make(map[string]string, len(existing))
		for _, row := range existing {
			stored[row.ID] = row.Checksum
		}

		incoming := make(map[string]bool, len(champions))
		for _, c := range champions {
			incoming[c.ID] = true
			old, ok := stored[c.ID]
			switch {
			case !ok:
				if err := tx.Create(c).Error; err != nil {
					return err
				}
				res.Inserted++
			case old != c.Checksum:
				if err := tx.Save(c).Error; err != nil {
					return err
				}
				res.Updated++
			}
		}

		stale := staleIDs(stored, incoming)
		if len(stale) > 0 {
			if err := tx.Delete(&domain.Champion{}, "id IN ?", stale).Error; err != nil {
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

func (r *championRepository) GetAll(ctx context.Context) ([]*domain.Champion, error) {
	var champions []*domain.Champion
	err := r.db.WithContext(ctx).Order("name ASC").Find(&champions).Error
	if err != nil {
		return nil, err
	}
	return champions, nil
}

func (r *championRepository) GetByID(ctx context.Context, id string) (*domain.Champion, error) {
	var champion domain.Champion
	err := r.db.WithContext(ctx).First(&champion, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrChampionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &champion, nil
}

// idChecksum is the projection the diff runs against.
type idChecksum struct {
	ID       string
	Checksum string
}

func staleIDs(stored map[string]string, incoming map[string]bool) []string {
	var stale []string
	for id := range stored {
		if !incoming[id] {
			stale = append(stale, id)
		}
	}
	return stale
}
