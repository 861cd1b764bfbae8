package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/statikk/ddmirror/internal/datadragon"
	"github.com/statikk/ddmirror/internal/domain"
)

func normalizeSummonerSpell(dragon *datadragon.Client, version, spellID string, raw json.RawMessage) (*domain.SummonerSpell, error) {
	var base struct {
		ID            string          `json:"id"`
		Key           string          `json:"key"`
		Name          string          `json:"name"`
		Description   string          `json:"description"`
		Cooldown      json.RawMessage `json:"cooldown"`
		CooldownBurn  string          `json:"cooldownBurn"`
		SummonerLevel int             `json:"summonerLevel"`
		Modes         []string        `json:"modes"`
		Image         struct {
			Full string `json:"full"`
		} `json:"image"`
	}
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, fmt.Errorf("%w: summoner spell %s: %v", domain.ErrNormalization, spellID, err)
	}
	if base.Name == "" || base.Key == "" {
		return nil, fmt.Errorf("%w: summoner spell %s: missing name or key", domain.ErrNormalization, spellID)
	}

	id := base.ID
	if id == "" {
		id = spellID
	}
	modes := base.Modes
	if modes == nil {
		modes = []string{}
	}

	spell := &domain.SummonerSpell{
		ID:            id,
		Key:           base.Key,
		Name:          base.Name,
		Description:   base.Description,
		Cooldowns:     mustJSON(rankValuesOrBurn(base.Cooldown, base.CooldownBurn)),
		Modes:         mustJSON(modes),
		SummonerLevel: base.SummonerLevel,
		ImageURL:      spellIcon(dragon, version, base.Image.Full),
		Version:       version,
		Checksum:      domain.PayloadChecksum(version, raw),

		LastSyncedAt: time.Now().UTC(),
	}
	return spell, nil
}
