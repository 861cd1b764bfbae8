package domain

// RunePath is a rune tree (e.g., Domination). Its slots are reconstructed
// from the Rune rows by slot index; slot 0 always holds the keystones.
type RunePath struct {
	ID       int    `json:"id" gorm:"primaryKey"` // e.g., 8100
	Key      string `json:"key" gorm:"not null;uniqueIndex"`
	Name     string `json:"name" gorm:"not null"`
	Icon     string `json:"icon"`
	Version  string `json:"version" gorm:"not null"`
	Checksum string `json:"-" gorm:"not null"`
}

// Rune belongs to exactly one slot of exactly one path. SlotIndex and
// SlotOrder together preserve the upstream tree ordering.
type Rune struct {
	ID        int    `json:"id" gorm:"primaryKey"` // e.g., 8112
	PathID    int    `json:"pathId" gorm:"not null;index"`
	SlotIndex int    `json:"slotIndex" gorm:"not null"`
	SlotOrder int    `json:"slotOrder" gorm:"not null"` // position within the slot
	Key       string `json:"key" gorm:"not null;index"`
	Name      string `json:"name" gorm:"not null"`
	ShortDesc string `json:"shortDesc" gorm:"type:text"`
	LongDesc  string `json:"longDesc" gorm:"type:text"`
	Icon      string `json:"icon"`
	Version   string `json:"version" gorm:"not null"`
	Checksum  string `json:"-" gorm:"not null"`
}
