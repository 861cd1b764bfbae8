package domain

import (
	"time"

	"gorm.io/datatypes"
)

type SummonerSpell struct {
	ID            string         `json:"id" gorm:"primaryKey"` // e.g., "SummonerFlash"
	Key           string         `json:"key" gorm:"not null;index"`
	Name          string         `json:"name" gorm:"not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Cooldowns     datatypes.JSON `json:"cooldowns" gorm:"type:jsonb"`
	Modes         datatypes.JSON `json:"modes" gorm:"type:jsonb"` // game modes where available
	SummonerLevel int            `json:"summonerLevel"`
	ImageURL      string         `json:"imageUrl"`
	Version       string         `json:"version" gorm:"not null"`
	Checksum      string         `json:"-" gorm:"not null"`
	LastSyncedAt  time.Time      `json:"lastSyncedAt"`
}
