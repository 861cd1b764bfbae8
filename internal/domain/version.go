package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// EntityType identifies an independently versioned slice of game data.
type EntityType string

const (
	EntityChampions      EntityType = "champions"
	EntityItems          EntityType = "items"
	EntityRunes          EntityType = "runes"
	EntitySummonerSpells EntityType = "summoner-spells"
)

// AllEntityTypes lists every entity type in sync order.
func AllEntityTypes() []EntityType {
	return []EntityType{EntityChampions, EntityItems, EntityRunes, EntitySummonerSpells}
}

// ParseEntityType maps a URL segment to an entity type.
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case EntityChampions, EntityItems, EntityRunes, EntitySummonerSpells:
		return EntityType(s), nil
	}
	return "", ErrUnknownEntity
}

// GameVersion is the per-entity-type version marker. One row per entity type,
// written only after that type's records have committed.
type GameVersion struct {
	EntityType     EntityType `json:"entityType" gorm:"primaryKey"`
	CurrentVersion string     `json:"currentVersion" gorm:"not null"` // e.g., "13.10.1"
	LastSyncedAt   time.Time  `json:"lastSyncedAt"`
}

// PayloadChecksum fingerprints a record as it arrived from upstream. The
// writer diffs stored checksums against the incoming batch, so re-applying an
// identical batch touches nothing.
func PayloadChecksum(version string, raw []byte, extra ...string) string {
	h := sha256.New()
	h.Write([]byte(version))
	h.Write([]byte{0})
	h.Write(raw)
	for _, e := range extra {
		h.Write([]byte{0})
		h.Write([]byte(e))
	}
	return hex.EncodeToString(h.Sum(nil))
}
