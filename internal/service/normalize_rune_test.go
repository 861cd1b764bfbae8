package service

import (
	"encoding/json"
	"testing"

	"github.com/statikk/ddmirror/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dominationJSON = `{
	"id": 8100,
	"key": "Domination",
	"icon": "perk-images/Styles/7200_Domination.png",
	"name": "Domination",
	"slots": [
		{"runes": [
			{"id": 8112, "key": "Electrocute", "name": "Electrocute", "shortDesc": "s", "longDesc": "l", "icon": "e.png"},
			{"id": 8128, "key": "DarkHarvest", "name": "Dark Harvest", "shortDesc": "s", "longDesc": "l", "icon": "d.png"}
		]},
		{"runes": [
			{"id": 8126, "key": "CheapShot", "name": "Cheap Shot", "shortDesc": "s", "longDesc": "l", "icon": "c.png"}
		]}
	]
}`

func TestNormalizeRunePath(t *testing.T) {
	path, runes, err := normalizeRunePath("13.9.1", json.RawMessage(dominationJSON))
	require.NoError(t, err)

	assert.Equal(t, 8100, path.ID)
	assert.Equal(t, "Domination", path.Key)
	assert.NotEmpty(t, path.Checksum)

	require.Len(t, runes, 3)

	// Keystones live in slot 0 and keep their upstream order.
	assert.Equal(t, "Electrocute", runes[0].Key)
	assert.Equal(t, 0, runes[0].SlotIndex)
	assert.Equal(t, 0, runes[0].SlotOrder)
	assert.Equal(t, "DarkHarvest", runes[1].Key)
	assert.Equal(t, 0, runes[1].SlotIndex)
	assert.Equal(t, 1, runes[1].SlotOrder)
	assert.Equal(t, "CheapShot", runes[2].Key)
	assert.Equal(t, 1, runes[2].SlotIndex)
	assert.Equal(t, 0, runes[2].SlotOrder)

	for _, rn := range runes {
		assert.Equal(t, 8100, rn.PathID)
		assert.Equal(t, "13.9.1", rn.Version)
	}
}

func TestNormalizeRunePath_ChecksumReflectsSlotPosition(t *testing.T) {
	a := `{"id": 1, "key": "P", "name": "P", "slots": [{"runes": [{"id": 10, "key": "R", "name": "R"}]}]}`
	b := `{"id": 1, "key": "P", "name": "P", "slots": [{"runes": []}, {"runes": [{"id": 10, "key": "R", "name": "R"}]}]}`

	_, runesA, err := normalizeRunePath("13.9.1", json.RawMessage(a))
	require.NoError(t, err)
	_, runesB, err := normalizeRunePath("13.9.1", json.RawMessage(b))
	require.NoError(t, err)

	require.Len(t, runesA, 1)
	require.Len(t, runesB, 1)

	// Same rune record in a different slot is a different row version.
	assert.NotEqual(t, runesA[0].Checksum, runesB[0].Checksum)
}

func TestNormalizeRunePath_SkipsMalformedRunes(t *testing.T) {
	raw := `{"id": 1, "key": "P", "name": "P", "slots": [{"runes": [{"key": "no-id"}, {"id": 10, "key": "R", "name": "R"}]}]}`

	_, runes, err := normalizeRunePath("13.9.1", json.RawMessage(raw))
	require.NoError(t, err)
	require.Len(t, runes, 1)
	assert.Equal(t, 10, runes[0].ID)
	assert.Equal(t, 1, runes[0].SlotOrder)
}

func TestNormalizeRunePath_MissingID(t *testing.T) {
	_, _, err := normalizeRunePath("13.9.1", json.RawMessage(`{"key": "P", "name": "P"}`))
	assert.ErrorIs(t, err, domain.ErrNormalization)
}

func TestNormalizeSummonerSpell(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "SummonerFlash",
		"key": "4",
		"name": "Flash",
		"description": "Teleports your champion.",
		"cooldown": [300],
		"cooldownBurn": "300",
		"summonerLevel": 7,
		"modes": ["CLASSIC", "ARAM"],
		"image": {"full": "SummonerFlash.png"}
	}`)

	spell, err := normalizeSummonerSpell(testDragon(), "13.9.1", "SummonerFlash", raw)
	require.NoError(t, err)

	assert.Equal(t, "SummonerFlash", spell.ID)
	assert.Equal(t, "4", spell.Key)
	assert.Equal(t, 7, spell.SummonerLevel)
	assert.Equal(t, "https://cdn.test/cdn/13.9.1/img/spell/SummonerFlash.png", spell.ImageURL)

	var cooldowns []float64
	require.NoError(t, json.Unmarshal(spell.Cooldowns, &cooldowns))
	assert.Equal(t, []float64{300}, cooldowns)
}

func TestNormalizeSummonerSpell_MissingName(t *testing.T) {
	_, err := normalizeSummonerSpell(testDragon(), "13.9.1", "Bad", json.RawMessage(`{"key": "9"}`))
	assert.ErrorIs(t, err, domain.ErrNormalization)
}
