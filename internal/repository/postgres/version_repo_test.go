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

func TestVersionRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewVersionRepository(testDB.DB)
	ctx := context.Background()

	// Never-synced types read as empty, not as an error.
	current, err := repo.Current(ctx, domain.EntityChampions)
	require.NoError(t, err)
	assert.Equal(t, "", current)

	require.NoError(t, repo.Set(ctx, domain.EntityChampions, "13.9.1"))
	require.NoError(t, repo.Set(ctx, domain.EntityItems, "13.9.1"))

	current, err = repo.Current(ctx, domain.EntityChampions)
	require.NoError(t, err)
	assert.Equal(t, "13.9.1", current)

	// Markers upsert in place per entity type.
	require.NoError(t, repo.Set(ctx, domain.EntityChampions, "13.10.1"))
	current, err = repo.Current(ctx, domain.EntityChampions)
	require.NoError(t, err)
	assert.Equal(t, "13.10.1", current)

	markers, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, markers, 2)
}
