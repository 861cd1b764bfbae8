package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syncedServer(t *testing.T) *testutil.TestServer {
	t.Helper()

	ts := testutil.NewTestServer(t)
	report := ts.Services.Sync.SyncAll(context.Background(), false, false)
	require.Equal(t, domain.SyncSuccess, report.Status)
	return ts
}

func TestChampionEndpoints(t *testing.T) {
	ts := syncedServer(t)

	var list struct {
		Champions []map[string]any `json:"champions"`
		Count     int              `json:"count"`
	}
	resp := getJSON(t, ts.APIURL("/champions"), &list)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 2, list.Count)
	assert.Equal(t, "Aatrox", list.Champions[0]["name"])

	var champion map[string]any
	resp = getJSON(t, ts.APIURL("/champions/Ahri"), &champion)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ahri", champion["name"])
	assert.Equal(t, "103", champion["key"])
	abilities, ok := champion["abilities"].([]any)
	require.True(t, ok)
	assert.Len(t, abilities, 5)

	resp, err := http.Get(ts.APIURL("/champions/Nobody"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestItemEndpoints(t *testing.T) {
	ts := syncedServer(t)

	var list struct {
		Items []map[string]any `json:"items"`
		Total int64            `json:"total"`
	}
	resp := getJSON(t, ts.APIURL("/items"), &list)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, list.Total)

	resp = getJSON(t, ts.APIURL("/items?tag=Boots&purchasable_only=true"), &list)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, list.Total)

	badResp, err := http.Get(ts.APIURL("/items?limit=0"))
	require.NoError(t, err)
	badResp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, badResp.StatusCode)

	var item map[string]any
	resp = getJSON(t, ts.APIURL("/items/6672"), &item)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Kraken Slayer", item["name"])
	assert.Equal(t, "mythic", item["tier"])
}

func TestItemRecipeEndpoint(t *testing.T) {
	ts := syncedServer(t)

	var node struct {
		Item       map[string]any `json:"item"`
		BuildsFrom []struct {
			Item       map[string]any `json:"item"`
			BuildsFrom []any          `json:"buildsFrom"`
		} `json:"buildsFrom"`
	}
	resp := getJSON(t, ts.APIURL("/items/6672/recipe"), &node)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Kraken Slayer", node.Item["name"])

	// Kraken Slayer <- Berserker's Greaves <- Boots
	require.Len(t, node.BuildsFrom, 1)
	assert.Equal(t, "Berserker's Greaves", node.BuildsFrom[0].Item["name"])
	assert.Len(t, node.BuildsFrom[0].BuildsFrom, 1)

	// Depth 1 stops at the root.
	resp = getJSON(t, ts.APIURL("/items/6672/recipe?depth=1"), &node)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, node.BuildsFrom)
}

func TestRuneEndpoints(t *testing.T) {
	ts := syncedServer(t)

	var trees []struct {
		Path  map[string]any     `json:"path"`
		Slots [][]map[string]any `json:"slots"`
	}
	resp := getJSON(t, ts.APIURL("/runes"), &trees)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, trees, 2)

	// Paths are ordered by ID, so Precision (8000) comes first.
	assert.Equal(t, "Precision", trees[0].Path["key"])
	require.NotEmpty(t, trees[0].Slots)
	assert.Equal(t, "PressTheAttack", trees[0].Slots[0][0]["key"])

	var tree struct {
		Path  map[string]any     `json:"path"`
		Slots [][]map[string]any `json:"slots"`
	}
	resp = getJSON(t, ts.APIURL("/runes/paths/8100"), &tree)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Domination", tree.Path["key"])
	require.Len(t, tree.Slots, 2)
	assert.Equal(t, "Electrocute", tree.Slots[0][0]["key"])

	var search struct {
		Runes []map[string]any `json:"runes"`
		Count int              `json:"count"`
	}
	resp = getJSON(t, ts.APIURL("/runes/search?query=electro"), &search)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, search.Count)
	assert.Equal(t, "Electrocute", search.Runes[0]["key"])

	badResp, err := http.Get(ts.APIURL("/runes/search"))
	require.NoError(t, err)
	badResp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, badResp.StatusCode)
}

func TestSummonerSpellEndpoints(t *testing.T) {
	ts := syncedServer(t)

	var list struct {
		SummonerSpells []map[string]any `json:"summonerSpells"`
		Count          int              `json:"count"`
	}
	resp := getJSON(t, ts.APIURL("/summoner-spells"), &list)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, list.Count)

	var spell map[string]any
	resp = getJSON(t, ts.APIURL("/summoner-spells/SummonerFlash"), &spell)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Flash", spell["name"])

	notFound, err := http.Get(ts.APIURL("/summoner-spells/SummonerBarrier"))
	require.NoError(t, err)
	notFound.Body.Close()
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
}
