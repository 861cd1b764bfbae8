package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/statikk/ddmirror/internal/datadragon"
	"github.com/statikk/ddmirror/internal/domain"
	"gorm.io/datatypes"
)

var abilityLetters = []string{"Q", "W", "E", "R"}

// normalizeChampion turns one raw champion detail record into the canonical
// shape. Tip fields go through the prioritized key-variant lookup; per-rank
// cooldown/cost/range fields prefer the authoritative array and fall back to
// the joined burn string.
func normalizeChampion(dragon *datadragon.Client, version, championID string, raw json.RawMessage) (*domain.Champion, error) {
	obj, err := rawObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: champion %s: %v", domain.ErrNormalization, championID, err)
	}

	var base struct {
		ID      string             `json:"id"`
		Key     string             `json:"key"`
		Name    string             `json:"name"`
		Title   string             `json:"title"`
		Blurb   string             `json:"blurb"`
		Partype string             `json:"partype"`
		Tags    []string           `json:"tags"`
		Stats   map[string]float64 `json:"stats"`
		Passive struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Image       struct {
				Full string `json:"full"`
			} `json:"image"`
		} `json:"passive"`
		Spells []json.RawMessage `json:"spells"`
		Skins  []struct {
			Num     int    `json:"num"`
			Name    string `json:"name"`
			Chromas bool   `json:"chromas"`
		} `json:"skins"`
	}
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, fmt.Errorf("%w: champion %s: %v", domain.ErrNormalization, championID, err)
	}
	if base.Name == "" || base.Key == "" {
		return nil, fmt.Errorf("%w: champion %s: missing name or key", domain.ErrNormalization, championID)
	}

	abilities := make([]domain.AbilitySlot, 0, 5)
	abilities = append(abilities, domain.AbilitySlot{
		Slot:        "P",
		Name:        base.Passive.Name,
		Description: base.Passive.Description,
		IconURL:     passiveIcon(dragon, version, base.Passive.Image.Full),
		Cooldowns:   []float64{},
		Costs:       []float64{},
		Ranges:      []float64{},
	})
	for i, spellRaw := range base.Spells {
		if i >= len(abilityLetters) {
			break
		}
		slot, err := normalizeSpellSlot(dragon, version, abilityLetters[i], spellRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: champion %s spell %s: %v", domain.ErrNormalization, championID, abilityLetters[i], err)
		}
		abilities = append(abilities, slot)
	}
	if len(abilities) != 5 {
		return nil, fmt.Errorf("%w: champion %s: expected 4 spells, got %d", domain.ErrNormalization, championID, len(base.Spells))
	}

	skins := make([]domain.ChampionSkin, 0, len(base.Skins))
	for _, sk := range base.Skins {
		skins = append(skins, domain.ChampionSkin{Num: sk.Num, Name: sk.Name, Chromas: sk.Chromas})
	}

	id := base.ID
	if id == "" {
		id = championID
	}

	tags := base.Tags
	if tags == nil {
		tags = []string{}
	}
	stats := base.Stats
	if stats == nil {
		stats = map[string]float64{}
	}

	champion := &domain.Champion{
		ID:        id,
		Key:       base.Key,
		Name:      base.Name,
		Title:     base.Title,
		Blurb:     base.Blurb,
		Partype:   base.Partype,
		ImageURL:  dragon.ChampionIconURL(version, id),
		Tags:      mustJSON(tags),
		Stats:     mustJSON(stats),
		Abilities: mustJSON(abilities),
		AllyTips:  mustJSON(firstStringList(obj, "allytips", "allyTips", "ally_tips")),
		EnemyTips: mustJSON(firstStringList(obj, "enemytips", "enemyTips", "enemy_tips")),
		Skins:     mustJSON(skins),
		Version:   version,
		Checksum:  domain.PayloadChecksum(version, raw),

		LastSyncedAt: time.Now().UTC(),
	}
	return champion, nil
}

func normalizeSpellSlot(dragon *datadragon.Client, version, letter string, raw json.RawMessage) (domain.AbilitySlot, error) {
	var sp struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Cooldown    json.RawMessage `json:"cooldown"`
		Cost        json.RawMessage `json:"cost"`
		Range       json.RawMessage `json:"range"`
		CooldownB   string          `json:"cooldownBurn"`
		CostB       string          `json:"costBurn"`
		RangeB      string          `json:"rangeBurn"`
		Image       struct {
			Full string `json:"full"`
		} `json:"image"`
	}
	if err := json.Unmarshal(raw, &sp); err != nil {
		return domain.AbilitySlot{}, err
	}

	return domain.AbilitySlot{
		Slot:        letter,
		Name:        sp.Name,
		Description: sp.Description,
		IconURL:     spellIcon(dragon, version, sp.Image.Full),
		Cooldowns:   rankValuesOrBurn(sp.Cooldown, sp.CooldownB),
		Costs:       rankValuesOrBurn(sp.Cost, sp.CostB),
		Ranges:      rankValuesOrBurn(sp.Range, sp.RangeB),
	}, nil
}

// rankValuesOrBurn prefers the per-rank array and falls back to the burn
// string only when the array is absent.
func rankValuesOrBurn(raw json.RawMessage, burn string) []float64 {
	if vals := perRankValues(raw); vals != nil {
		return vals
	}
	if vals := parseBurn(burn); vals != nil {
		return vals
	}
	return []float64{}
}

func spellIcon(dragon *datadragon.Client, version, image string) string {
	if image == "" {
		return ""
	}
	return dragon.SpellIconURL(version, image)
}

func passiveIcon(dragon *datadragon.Client, version, image string) string {
	if image == "" {
		return ""
	}
	return dragon.PassiveIconURL(version, image)
}

// mustJSON marshals canonical sub-structures for jsonb storage. The inputs
// are our own structs and plain maps; marshaling them cannot fail.
func mustJSON(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return datatypes.JSON(b)
}
