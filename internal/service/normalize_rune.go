package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/statikk/ddmirror/internal/domain"
)

// normalizeRunePath flattens one raw path record (path -> slots -> runes)
// into a RunePath plus its Rune rows. Slot index and in-slot order are part
// of the data: slot 0 is always the keystone row, and the extension renders
// runes in upstream order.
func normalizeRunePath(version string, raw json.RawMessage) (*domain.RunePath, []*domain.Rune, error) {
	var base struct {
		ID    int    `json:"id"`
		Key   string `json:"key"`
		Name  string `json:"name"`
		Icon  string `json:"icon"`
		Slots []struct {
			Runes []json.RawMessage `json:"runes"`
		} `json:"slots"`
	}
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, nil, fmt.Errorf("%w: rune path: %v", domain.ErrNormalization, err)
	}
	if base.ID == 0 || base.Key == "" {
		return nil, nil, fmt.Errorf("%w: rune path: missing id or key", domain.ErrNormalization)
	}

	path := &domain.RunePath{
		ID:       base.ID,
		Key:      base.Key,
		Name:     base.Name,
		Icon:     base.Icon,
		Version:  version,
		Checksum: domain.PayloadChecksum(version, raw),
	}

	var runes []*domain.Rune
	for slotIdx, slot := range base.Slots {
		for order, runeRaw := range slot.Runes {
			var rn struct {
				ID        int    `json:"id"`
				Key       string `json:"key"`
				Name      string `json:"name"`
				ShortDesc string `json:"shortDesc"`
				LongDesc  string `json:"longDesc"`
				Icon      string `json:"icon"`
			}
			if err := json.Unmarshal(runeRaw, &rn); err != nil || rn.ID == 0 {
				log.Printf("WARN [sync.runes] path %s slot %d: skipping malformed rune: %v", base.Key, slotIdx, err)
				continue
			}
			runes = append(runes, &domain.Rune{
				ID:        rn.ID,
				PathID:    base.ID,
				SlotIndex: slotIdx,
				SlotOrder: order,
				Key:       rn.Key,
				Name:      rn.Name,
				ShortDesc: rn.ShortDesc,
				LongDesc:  rn.LongDesc,
				Icon:      rn.Icon,
				Version:   version,
				Checksum:  domain.PayloadChecksum(version, runeRaw, strconv.Itoa(slotIdx), strconv.Itoa(order)),
			})
		}
	}
	return path, runes, nil
}
