package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Champion struct {
	ID           string         `json:"id" gorm:"primaryKey"`     // e.g., "Aatrox"
	Key          string         `json:"key" gorm:"not null;index"` // numeric key, e.g., "266"
	Name         string         `json:"name" gorm:"not null;index"`
	Title        string         `json:"title"`
	Blurb        string         `json:"blurb" gorm:"type:text"`
	Partype      string         `json:"partype"` // resource type (mana, energy, ...)
	ImageURL     string         `json:"imageUrl"`
	Tags         datatypes.JSON `json:"tags" gorm:"type:jsonb"`      // ["Fighter", "Tank"], order preserved
	Stats        datatypes.JSON `json:"stats" gorm:"type:jsonb"`     // flat numeric base stats
	Abilities    datatypes.JSON `json:"abilities" gorm:"type:jsonb"` // 5 slots: passive + Q/W/E/R
	AllyTips     datatypes.JSON `json:"allyTips" gorm:"type:jsonb"`
	EnemyTips    datatypes.JSON `json:"enemyTips" gorm:"type:jsonb"`
	Skins        datatypes.JSON `json:"skins" gorm:"type:jsonb"`
	Version      string         `json:"version" gorm:"not null"`
	Checksum     string         `json:"-" gorm:"not null"`
	LastSyncedAt time.Time      `json:"lastSyncedAt"`
}

// AbilitySlot is one entry of Champion.Abilities. Slot 0 is the passive,
// slots 1-4 are Q/W/E/R. Per-rank lists are empty for the passive.
type AbilitySlot struct {
	Slot        string    `json:"slot"` // "P", "Q", "W", "E", "R"
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IconURL     string    `json:"iconUrl,omitempty"`
	Cooldowns   []float64 `json:"cooldowns"`
	Costs       []float64 `json:"costs"`
	Ranges      []float64 `json:"ranges"`
}

// ChampionSkin is one entry of Champion.Skins, ordered by skin index.
type ChampionSkin struct {
	Num     int    `json:"num"`
	Name    string `json:"name"`
	Chromas bool   `json:"chromas"`
}
