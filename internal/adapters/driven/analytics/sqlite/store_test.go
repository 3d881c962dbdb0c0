package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolarian-archive/scryglass/internal/core/domain"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an empty path", func(t *testing.T) {
		_, err := NewStore("")
		assert.Error(t, err)
	})

	t.Run("records search events", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "analytics.db")
		store, err := NewStore(path)
		require.NoError(t, err)
		defer store.Close()

		err = store.RecordSearch(ctx, domain.SearchEvent{
			Time:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			UserID:     7,
			Query:      "lightning bolt",
			Offset:     0,
			Results:    2,
			NextOffset: "1",
		})
		require.NoError(t, err)

		err = store.RecordSearch(ctx, domain.SearchEvent{UserID: 8, Query: "island"})
		require.NoError(t, err)

		var count int
		require.NoError(t, store.db.QueryRow(`SELECT COUNT(*) FROM searches`).Scan(&count))
		assert.Equal(t, 2, count)

		var query, searchedAt string
		require.NoError(t, store.db.QueryRow(
			`SELECT query, searched_at FROM searches WHERE user_id = 7`).Scan(&query, &searchedAt))
		assert.Equal(t, "lightning bolt", query)
		assert.Equal(t, "2024-03-01T12:00:00Z", searchedAt)
	})

	t.Run("zero time defaults to now", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "analytics.db")
		store, err := NewStore(path)
		require.NoError(t, err)
		defer store.Close()

		require.NoError(t, store.RecordSearch(ctx, domain.SearchEvent{UserID: 1, Query: "swamp"}))

		var searchedAt string
		require.NoError(t, store.db.QueryRow(`SELECT searched_at FROM searches`).Scan(&searchedAt))

		parsed, err := time.Parse(time.RFC3339, searchedAt)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), parsed, time.Minute)
	})

	t.Run("reopening keeps recorded events", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "analytics.db")

		store, err := NewStore(path)
		require.NoError(t, err)
		require.NoError(t, store.RecordSearch(ctx, domain.SearchEvent{UserID: 1, Query: "forest"}))
		require.NoError(t, store.Close())

		reopened, err := NewStore(path)
		require.NoError(t, err)
		defer reopened.Close()

		var count int
		require.NoError(t, reopened.db.QueryRow(`SELECT COUNT(*) FROM searches`).Scan(&count))
		assert.Equal(t, 1, count)
	})
}
