package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/repository"
	"gorm.io/gorm"
)

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *itemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) ReplaceAll(ctx context.Context, items []*domain.Item) (domain.UpsertResult, error) {
	var res domain.UpsertResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []idChecksum
		if err := tx.Model(&domain.Item{}).Select("id", "checksum").Find(&existing).Error; err != nil {
			return err
		}
		stored := make(map[string]string, len(existing))
		for _, row := range existing {
			stored[row.ID] = row.Checksum
		}

		incoming := make(map[string]bool, len(items))
		for _, it := range items {
			incoming[it.ID] = true
			old, ok := stored[it.ID]
			switch {
			case !ok:
				if err := tx.Create(it).Error; err != nil {
					return err
				}
				res.Inserted++
			case old != it.Checksum:
				if err := tx.Save(it).Error; err != nil {
					return err
				}
				res.Updated++
			}
		}

		stale := staleIDs(stored, incoming)
		if len(stale) > 0 {
			if err := tx.Delete(&domain.Item{}, "id IN ?", stale).Error; err != nil {
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

func (r *itemRepository) List(ctx context.Context, filter repository.ItemFilter) ([]*domain.Item, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Item{})

	if filter.Tag != "" {
		tagJSON, err := json.Marshal([]string{filter.Tag})
		if err != nil {
			return nil, 0, err
		}
		query = query.Where("tags @> ?::jsonb", string(tagJSON))
	}
	if filter.PurchasableOnly {
		query = query.Where("purchasable = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.Limit).Offset((page - 1) * filter.Limit)
	}

	var items []*domain.Item
	if err := query.Order("id ASC").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []*domain.Item
	err := r.db.WithContext(ctx).Find(&items, "id IN ?", ids).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
