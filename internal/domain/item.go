package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ItemTier is the coarse cost category used by the extension for grouping.
type ItemTier string

const (
	TierStarter   ItemTier = "starter"
	TierBasic     ItemTier = "basic"
	TierEpic      ItemTier = "epic"
	TierLegendary ItemTier = "legendary"
	TierMythic    ItemTier = "mythic"
)

type Item struct {
	ID           string         `json:"id" gorm:"primaryKey"` // e.g., "3031"
	Name         string         `json:"name" gorm:"not null;index"`
	Description  string         `json:"description" gorm:"type:text"` // raw markup from upstream
	Plaintext    string         `json:"plaintext" gorm:"type:text"`
	Tier         ItemTier       `json:"tier" gorm:"index"`
	BaseGold     int            `json:"baseGold"`
	TotalGold    int            `json:"totalGold"`
	SellGold     int            `json:"sellGold"`
	Purchasable  bool           `json:"purchasable"`
	Stats        datatypes.JSON `json:"stats" gorm:"type:jsonb"`      // sparse stat name -> float
	BuildsFrom   datatypes.JSON `json:"buildsFrom" gorm:"type:jsonb"` // ordered component item IDs
	BuildsInto   datatypes.JSON `json:"buildsInto" gorm:"type:jsonb"`
	Tags         datatypes.JSON `json:"tags" gorm:"type:jsonb"`
	Maps         datatypes.JSON `json:"maps" gorm:"type:jsonb"` // map ID -> available
	ImageURL     string         `json:"imageUrl"`
	Version      string         `json:"version" gorm:"not null"`
	Checksum     string         `json:"-" gorm:"not null"`
	LastSyncedAt time.Time      `json:"lastSyncedAt"`
}
