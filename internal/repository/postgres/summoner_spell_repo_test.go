package postgres_test

import (
	"context"
	"testing"

	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/repository/postgres"
	"github.com/statikk/ddmirror/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func testSpell(id, name string) *domain.SummonerSpell {
	return &domain.SummonerSpell{
		ID:        id,
		Key:       id,
		Name:      name,
		Cooldowns: datatypes.JSON(`[300]`),
		Modes:     datatypes.JSON(`["CLASSIC"]`),
		Version:   "13.9.1",
		Checksum:  domain.PayloadChecksum("13.9.1", []byte(id+name)),
	}
}

func TestSummonerSpellRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewSummonerSpellRepository(testDB.DB)
	ctx := context.Background()

	res, err := repo.ReplaceAll(ctx, []*domain.SummonerSpell{
		testSpell("SummonerFlash", "Flash"),
		testSpell("SummonerDot", "Ignite"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UpsertResult{Inserted: 2}, res)

	spells, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, spells, 2)
	assert.Equal(t, "Flash", spells[0].Name)
	assert.Equal(t, "Ignite", spells[1].Name)

	got, err := repo.GetByID(ctx, "SummonerFlash")
	require.NoError(t, err)
	assert.Equal(t, "Flash", got.Name)

	_, err = repo.GetByID(ctx, "SummonerBarrier")
	assert.ErrorIs(t, err, domain.ErrSummonerSpellNotFound)
}
