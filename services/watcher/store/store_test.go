package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lottowatch-backend/lib/scrapers/nationallottery"
	"lottowatch-backend/lib/testutil"

	"github.com/stretchr/testify/require"
)

func sampleGames() map[nationallottery.GameID]nationallottery.Game {
	rollCount := int64(2)
	return map[nationallottery.GameID]nationallottery.Game{
		nationallottery.GameLotto: {
			NextDrawDate: time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC),
			Jackpot:      5_000_000,
			RollCount:    &rollCount,
		},
		nationallottery.GameEuromillions: {
			NextDrawDate: time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC),
			Jackpot:      14_000_000,
		},
	}
}

func TestYamlStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewYamlStore(filepath.Join(t.TempDir(), "games.yml"))

	games, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, games)

	err = store.PutAll(ctx, sampleGames())
	require.NoError(t, err)

	games, err = store.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, sampleGames(), games)
}

func TestYamlStoreSupersedes(t *testing.T) {
	ctx := context.Background()
	store := NewYamlStore(filepath.Join(t.TempDir(), "games.yml"))

	err := store.PutAll(ctx, sampleGames())
	require.NoError(t, err)

	next := map[nationallottery.GameID]nationallottery.Game{
		nationallottery.GameEuromillions: {
			NextDrawDate: time.Date(2023, 10, 31, 0, 0, 0, 0, time.UTC),
			Jackpot:      17_000_000,
		},
	}
	err = store.PutAll(ctx, next)
	require.NoError(t, err)

	games, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, next, games)
}

func TestYamlStoreMalformedFile(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "games.yml")
	err := os.WriteFile(filename, []byte("{{{ not yaml"), 0644)
	require.NoError(t, err)

	games, err := NewYamlStore(filename).GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, games)
}

func TestSqliteStoreRoundTrip(t *testing.T) {
	result, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "watcher/store",
		DbSchema: Schema,
	})
	defer cleanup()

	ctx := context.Background()
	store := NewSqliteStore(result.DB)

	games, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, games)

	err = store.PutAll(ctx, sampleGames())
	require.NoError(t, err)

	games, err = store.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, sampleGames(), games)
}
