package postgres

import (
	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.GameVersion{},
		&domain.Champion{},
		&domain.Item{},
		&domain.RunePath{},
		&domain.Rune{},
		&domain.SummonerSpell{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Version:       NewVersionRepository(db),
		Champion:      NewChampionRepository(db),
		Item:          NewItemRepository(db),
		Rune:          NewRuneRepository(db),
		SummonerSpell: NewSummonerSpellRepository(db),
	}
}
