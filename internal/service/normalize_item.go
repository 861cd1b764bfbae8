package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/statikk/ddmirror/internal/datadragon"
	"github.com/statikk/ddmirror/internal/domain"
)

// normalizeItem turns one raw item record into the canonical shape. Build
// references that point at items absent from the same payload are kept as
// unresolved placeholders and logged; upstream has shipped dangling recipe
// links before and a bad link must not fail the sync.
func normalizeItem(dragon *datadragon.Client, version, itemID string, raw json.RawMessage, payloadIDs map[string]bool) (*domain.Item, error) {
	var base struct {
		Name        string             `json:"name"`
		Description string             `json:"description"`
		Plaintext   string             `json:"plaintext"`
		Tier        json.RawMessage    `json:"tier"`
		From        []string           `json:"from"`
		Into        []string           `json:"into"`
		Tags        []string           `json:"tags"`
		Maps        map[string]bool    `json:"maps"`
		Stats       map[string]float64 `json:"stats"`
		Gold        struct {
			Base        int  `json:"base"`
			Total       int  `json:"total"`
			Sell        int  `json:"sell"`
			Purchasable bool `json:"purchasable"`
		} `json:"gold"`
	}
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, fmt.Errorf("%w: item %s: %v", domain.ErrNormalization, itemID, err)
	}
	if base.Name == "" {
		return nil, fmt.Errorf("%w: item %s: missing name", domain.ErrNormalization, itemID)
	}

	for _, ref := range base.From {
		if !payloadIDs[ref] {
			log.Printf("WARN [sync.items] item %s references unknown component %s, keeping unresolved", itemID, ref)
		}
	}
	for _, ref := range base.Into {
		if !payloadIDs[ref] {
			log.Printf("WARN [sync.items] item %s builds into unknown item %s, keeping unresolved", itemID, ref)
		}
	}

	tags := base.Tags
	if tags == nil {
		tags = []string{}
	}
	stats := base.Stats
	if stats == nil {
		stats = map[string]float64{}
	}
	maps := base.Maps
	if maps == nil {
		maps = map[string]bool{}
	}
	from := base.From
	if from == nil {
		from = []string{}
	}
	into := base.Into
	if into == nil {
		into = []string{}
	}

	item := &domain.Item{
		ID:          itemID,
		Name:        base.Name,
		Description: base.Description,
		Plaintext:   base.Plaintext,
		Tier:        deriveItemTier(base.Tier, base.Gold.Total, base.Gold.Purchasable, base.Description),
		BaseGold:    base.Gold.Base,
		TotalGold:   base.Gold.Total,
		SellGold:    base.Gold.Sell,
		Purchasable: base.Gold.Purchasable,
		Stats:       mustJSON(stats),
		BuildsFrom:  mustJSON(from),
		BuildsInto:  mustJSON(into),
		Tags:        mustJSON(tags),
		Maps:        mustJSON(maps),
		ImageURL:    dragon.ItemIconURL(version, itemID),
		Version:     version,
		Checksum:    domain.PayloadChecksum(version, raw),

		LastSyncedAt: time.Now().UTC(),
	}
	return item, nil
}

// deriveItemTier resolves the tier through a fixed cascade. Upstream does not
// reliably ship an explicit tier, so: (1) a recognized explicit tier wins;
// (2) otherwise infer from total gold; (3) a mythic/legendary keyword in the
// description upgrades the inferred tier, never downgrades it.
func deriveItemTier(explicit json.RawMessage, goldTotal int, purchasable bool, description string) domain.ItemTier {
	if tier, ok := recognizedTier(explicit); ok {
		return tier
	}

	var tier domain.ItemTier
	switch {
	case goldTotal >= 3000:
		tier = domain.TierMythic
	case goldTotal >= 2000:
		tier = domain.TierLegendary
	case goldTotal >= 1000:
		tier = domain.TierEpic
	case goldTotal <= 500 && purchasable:
		tier = domain.TierStarter
	default:
		tier = domain.TierBasic
	}

	desc := strings.ToLower(description)
	if strings.Contains(desc, "mythic") {
		return domain.TierMythic
	}
	if strings.Contains(desc, "legendary") && tierRank(tier) < tierRank(domain.TierLegendary) {
		return domain.TierLegendary
	}
	return tier
}

func recognizedTier(raw json.RawMessage) (domain.ItemTier, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	switch domain.ItemTier(strings.ToLower(s)) {
	case domain.TierStarter, domain.TierBasic, domain.TierEpic, domain.TierLegendary, domain.TierMythic:
		return domain.ItemTier(strings.ToLower(s)), true
	}
	return "", false
}

func tierRank(t domain.ItemTier) int {
	switch t {
	case domain.TierStarter:
		return 0
	case domain.TierBasic:
		return 1
	case domain.TierEpic:
		return 2
	case domain.TierLegendary:
		return 3
	case domain.TierMythic:
		return 4
	}
	return -1
}
