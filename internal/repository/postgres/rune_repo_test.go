package postgres_test

import (
	"context"
	"testing"

	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/repository/postgres"
	"github.com/statikk/ddmirror/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRunePath(id int, key string) *domain.RunePath {
	return &domain.RunePath{
		ID:       id,
		Key:      key,
		Name:     key,
		Icon:     key + ".png",
		Version:  "13.9.1",
		Checksum: domain.PayloadChecksum("13.9.1", []byte(key)),
	}
}

func testRune(id, pathID, slotIndex, slotOrder int, key string) *domain.Rune {
	return &domain.Rune{
		ID:        id,
		PathID:    pathID,
		SlotIndex: slotIndex,
		SlotOrder: slotOrder,
		Key:       key,
		Name:      key,
		Version:   "13.9.1",
		Checksum:  domain.PayloadChecksum("13.9.1", []byte(key)),
	}
}

func TestRuneRepository_ReplaceAll(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewRuneRepository(testDB.DB)
	ctx := context.Background()

	paths := []*domain.RunePath{testRunePath(8100, "Domination")}
	runes := []*domain.Rune{
		testRune(8112, 8100, 0, 0, "Electrocute"),
		testRune(8128, 8100, 0, 1, "DarkHarvest"),
		testRune(8126, 8100, 1, 0, "CheapShot"),
	}

	res, err := repo.ReplaceAll(ctx, paths, runes)
	require.NoError(t, err)
	assert.Equal(t, domain.UpsertResult{Inserted: 4}, res)

	res, err = repo.ReplaceAll(ctx, paths, runes)
	require.NoError(t, err)
	assert.True(t, res.Empty())

	// Dropping a rune removes only that row.
	res, err = repo.ReplaceAll(ctx, paths, runes[:2])
	require.NoError(t, err)
	assert.Equal(t, domain.UpsertResult{Removed: 1}, res)
}

func TestRuneRepository_GetRunesByPath_Ordering(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewRuneRepository(testDB.DB)
	ctx := context.Background()

	paths := []*domain.RunePath{testRunePath(8100, "Domination")}
	// Inserted out of order on purpose.
	runes := []*domain.Rune{
		testRune(8126, 8100, 1, 0, "CheapShot"),
		testRune(8128, 8100, 0, 1, "DarkHarvest"),
		testRune(8112, 8100, 0, 0, "Electrocute"),
	}
	_, err := repo.ReplaceAll(ctx, paths, runes)
	require.NoError(t, err)

	got, err := repo.GetRunesByPath(ctx, 8100)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Electrocute", got[0].Key)
	assert.Equal(t, "DarkHarvest", got[1].Key)
	assert.Equal(t, "CheapShot", got[2].Key)
}

func TestRuneRepository_Search(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewRuneRepository(testDB.DB)
	ctx := context.Background()

	paths := []*domain.RunePath{
		testRunePath(8100, "Domination"),
		testRunePath(8000, "Precision"),
	}
	runes := []*domain.Rune{
		testRune(8112, 8100, 0, 0, "Electrocute"),
		testRune(8005, 8000, 0, 0, "PressTheAttack"),
		testRune(8008, 8000, 0, 1, "LethalTempo"),
	}
	_, err := repo.ReplaceAll(ctx, paths, runes)
	require.NoError(t, err)

	got, err := repo.Search(ctx, "electro", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 8112, got[0].ID)

	got, err = repo.Search(ctx, "e", "Precision")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.Search(ctx, "nothing-matches", "")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = repo.GetPathByID(ctx, 1234)
	assert.ErrorIs(t, err, domain.ErrRunePathNotFound)
}
