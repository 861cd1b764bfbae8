package postgres_test

import (
	"context"
	"testing"

	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/repository"
	"github.com/statikk/ddmirror/internal/repository/postgres"
	"github.com/statikk/ddmirror/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func testItem(id, name string, totalGold int, purchasable bool, tags string) *domain.Item {
	return &domain.Item{
		ID:          id,
		Name:        name,
		TotalGold:   totalGold,
		Purchasable: purchasable,
		Tier:        domain.TierBasic,
		Stats:       datatypes.JSON(`{}`),
		BuildsFrom:  datatypes.JSON(`[]`),
		BuildsInto:  datatypes.JSON(`[]`),
		Tags:        datatypes.JSON(tags),
		Maps:        datatypes.JSON(`{}`),
		Version:     "13.9.1",
		Checksum:    domain.PayloadChecksum("13.9.1", []byte(id+name)),
	}
}

func seedItems(t *testing.T, repo repository.ItemRepository) {
	t.Helper()
	_, err := repo.ReplaceAll(context.Background(), []*domain.Item{
		testItem("1001", "Boots", 300, true, `["Boots"]`),
		testItem("3006", "Berserker's Greaves", 1100, true, `["Boots","AttackSpeed"]`),
		testItem("3070", "Tear of the Goddess", 400, true, `["Mana"]`),
		testItem("7000", "Ornn Upgrade", 0, false, `["AttackSpeed"]`),
	})
	require.NoError(t, err)
}

func TestItemRepository_List(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewItemRepository(testDB.DB)
	ctx := context.Background()
	seedItems(t, repo)

	items, total, err := repo.List(ctx, repository.ItemFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, items, 4)

	// Tag containment on the jsonb column
	items, total, err = repo.List(ctx, repository.ItemFilter{Tag: "Boots"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "1001", items[0].ID)
	assert.Equal(t, "3006", items[1].ID)

	items, _, err = repo.List(ctx, repository.ItemFilter{Tag: "AttackSpeed", PurchasableOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "3006", items[0].ID)
}

func TestItemRepository_ListPagination(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewItemRepository(testDB.DB)
	ctx := context.Background()
	seedItems(t, repo)

	items, total, err := repo.List(ctx, repository.ItemFilter{Limit: 2, Page: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, items, 2)
	assert.Equal(t, "1001", items[0].ID)

	items, _, err = repo.List(ctx, repository.ItemFilter{Limit: 2, Page: 2})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "3070", items[0].ID)
}

func TestItemRepository_GetByIDs(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewItemRepository(testDB.DB)
	ctx := context.Background()
	seedItems(t, repo)

	items, err := repo.GetByIDs(ctx, []string{"1001", "3006", "9999"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = repo.GetByID(ctx, "9999")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestItemRepository_ReplaceAllIdempotent(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewItemRepository(testDB.DB)
	ctx := context.Background()

	batch := []*domain.Item{testItem("1001", "Boots", 300, true, `["Boots"]`)}

	res, err := repo.ReplaceAll(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, domain.UpsertResult{Inserted: 1}, res)

	res, err = repo.ReplaceAll(ctx, batch)
	require.NoError(t, err)
	assert.True(t, res.Empty())
}
