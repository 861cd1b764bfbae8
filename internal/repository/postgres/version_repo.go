package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/statikk/ddmirror/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type versionRepository struct {
	db *gorm.DB
}

func NewVersionRepository(db *gorm.DB) *versionRepository {
	return &versionRepository{db: db}
}

func (r *versionRepository) Current(ctx context.Context, entityType domain.EntityType) (string, error) {
	var marker domain.GameVersion
	err := r.db.WithContext(ctx).First(&marker, "entity_type = ?", entityType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return marker.CurrentVersion, nil
}

func (r *versionRepository) Set(ctx context.Context, entityType domain.EntityType, version string) error {
	marker := &domain.GameVersion{
		EntityType:     entityType,
		CurrentVersion: version,
		LastSyncedAt:   time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entity_type"}},
		UpdateAll: true,
	}).Create(marker).Error
}

func (r *versionRepository) All(ctx context.Context) ([]*domain.GameVersion, error) {
	var markers []*domain.GameVersion
	err := r.db.WithContext(ctx).Order("entity_type ASC").Find(&markers).Error
	if err != nil {
		return nil, err
	}
	return markers, nil
}
