package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/statikk/ddmirror/internal/domain"
	"gorm.io/gorm"
)

type runeRepository struct {
	db *gorm.DB
}

func NewRuneRepository(db *gorm.DB) *runeRepository {
	return &runeRepository{db: db}
}

type intIDChecksum struct {
	ID       int
	Checksum string
}

func (r *runeRepository) ReplaceAll(ctx context.Context, paths []*domain.RunePath, runes []*domain.Rune) (domain.UpsertResult, error) {
	var res domain.UpsertResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pathRes, err := reconcilePaths(tx, paths)
		if err != nil {
			return err
		}
		runeRes, err := reconcileRunes(tx, runes)
		if err != nil {
			return err
		}
		res.Inserted = pathRes.Inserted + runeRes.Inserted
		res.Updated = pathRes.Updated + runeRes.Updated
		res.Removed = pathRes.Removed + runeRes.Removed
		return nil
	})
	if err != nil {
		return domain.UpsertResult{}, fmt.Errorf("%w: %v", domain.ErrWriteConflict, err)
	}
	return res, nil
}

func reconcilePaths(tx *gorm.DB, paths []*domain.RunePath) (domain.UpsertResult, error) {
	var res domain.UpsertResult

	var existing []intIDChecksum
	if err := tx.Model(&domain.RunePath{}).Select("id", "checksum").Find(&existing).Error; err != nil {
		return res, err
	}
	stored := make(map[int]string, len(existing))
	for _, row := range existing {
		stored[row.ID] = row.Checksum
	}

	incoming := make(map[int]bool, len(paths))
	for _, p := range paths {
		incoming[p.ID] = true
		old, ok := stored[p.ID]
		switch {
		case !ok:
			if err := tx.Create(p).Error; err != nil {
				return res, err
			}
			res.Inserted++
		case old != p.Checksum:
			if err := tx.Save(p).Error; err != nil {
				return res, err
			}
			res.Updated++
		}
	}

	var stale []int
	for id := range stored {
		if !incoming[id] {
			stale = append(stale, id)
		}
	}
	if len(stale) > 0 {
		if err := tx.Delete(&domain.RunePath{}, "id IN ?", stale).Error; err != nil {
			return res, err
		}
		res.Removed = len(stale)
	}
	return res, nil
}

func reconcileRunes(tx *gorm.DB, runes []*domain.Rune) (domain.UpsertResult, error) {
	var res domain.UpsertResult

	var existing []intIDChecksum
	if err := tx.Model(&domain.Rune{}).Select("id", "checksum").Find(&existing).Error; err != nil {
		return res, err
	}
	stored := make(map[int]string, len(existing))
	for _, row := range existing {
		stored[row.ID] = row.Checksum
	}

	incoming := make(map[int]bool, len(runes))
	for _, rn := range runes {
		incoming[rn.ID] = true
		old, ok := stored[rn.ID]
		switch {
		case !ok:
			if err := tx.Create(rn).Error; err != nil {
				return res, err
			}
			res.Inserted++
		case old != rn.Checksum:
			if err := tx.Save(rn).Error; err != nil {
				return res, err
			}
			res.Updated++
		}
	}

	var stale []int
	for id := range stored {
		if !incoming[id] {
			stale = append(stale, id)
		}
	}
	if len(stale) > 0 {
		if err := tx.Delete(&domain.Rune{}, "id IN ?", stale).Error; err != nil {
			return res, err
		}
		res.Removed = len(stale)
	}
	return res, nil
}

func (r *runeRepository) GetAllPaths(ctx context.Context) ([]*domain.RunePath, error) {
	var paths []*domain.RunePath
	err := r.db.WithContext(ctx).Order("id ASC").Find(&paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (r *runeRepository) GetPathByID(ctx context.Context, id int) (*domain.RunePath, error) {
	var path domain.RunePath
	err := r.db.WithContext(ctx).First(&path, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRunePathNotFound
	}
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func (r *runeRepository) GetRunesByPath(ctx context.Context, pathID int) ([]*domain.Rune, error) {
	var runes []*domain.Rune
	err := r.db.WithContext(ctx).
		Where("path_id = ?", pathID).
		Order("slot_index ASC, slot_order ASC").
		Find(&runes).Error
	if err != nil {
		return nil, err
	}
	return runes, nil
}

func (r *runeRepository) Search(ctx context.Context, query, pathKey string) ([]*domain.Rune, error) {
	q := r.db.WithContext(ctx).Model(&domain.Rune{})

	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("runes.name ILIKE ? OR runes.key ILIKE ?", pattern, pattern)
	}
	if pathKey != "" {
		q = q.Joins("JOIN rune_paths ON rune_paths.id = runes.path_id").
			Where("rune_paths.key = ?", pathKey)
	}

	var runes []*domain.Rune
	err := q.Order("runes.path_id ASC, runes.slot_index ASC, runes.slot_order ASC").Find(&runes).Error
	if err != nil {
		return nil, err
	}
	return runes, nil
}
