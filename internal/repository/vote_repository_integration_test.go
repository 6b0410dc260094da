package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M7mdisk/app-center-ratings/internal/ratings"
	"github.com/M7mdisk/app-center-ratings/internal/repository"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	schema := `
	CREATE TABLE snap_categories (
		snap_id TEXT NOT NULL,
		category INTEGER NOT NULL,
		PRIMARY KEY (snap_id, category)
	);
	CREATE TABLE votes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		snap_id TEXT NOT NULL,
		vote_up BOOLEAN NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	`
	_, err = db.Exec(schema)
	require.NoError(t, err)

	return db
}

// seedVotes inserts count votes for the snap, positive of them up-votes,
// all created at the given time.
func seedVotes(t *testing.T, db *sql.DB, snapID string, count, positive int, at time.Time) {
	t.Helper()

	for i := 0; i < count; i++ {
		_, err := db.Exec(
			`INSERT INTO votes (snap_id, vote_up, created_at) VALUES (?, ?, ?)`,
			snapID, i < positive, at.UTC(),
		)
		require.NoError(t, err)
	}
}

func seedCategory(t *testing.T, db *sql.DB, snapID string, category ratings.Category) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO snap_categories (snap_id, category) VALUES (?, ?)`,
		snapID, int32(category),
	)
	require.NoError(t, err)
}

func TestGetVoteSummaries(t *testing.T) {
	ctx := context.Background()
	recent := time.Now().Add(-time.Hour)

	t.Run("ranks snaps by smoothed positive ratio", func(t *testing.T) {
		db := setupTestDB(t)
		seedVotes(t, db, "middling", 100, 60, recent)
		seedVotes(t, db, "excellent", 100, 98, recent)
		seedVotes(t, db, "bad", 100, 10, recent)

		repo := repository.NewVoteRepository(db)
		summaries, err := repo.GetVoteSummaries(ctx, ratings.TimeframeWeek, nil)

		require.NoError(t, err)
		require.Len(t, summaries, 3)
		assert.Equal(t, "excellent", summaries[0].SnapID)
		assert.Equal(t, "middling", summaries[1].SnapID)
		assert.Equal(t, "bad", summaries[2].SnapID)

		assert.Equal(t, int64(100), summaries[0].TotalVotes)
		assert.Equal(t, int64(98), summaries[0].PositiveVotes)
	})

	t.Run("excludes votes outside the timeframe window", func(t *testing.T) {
		db := setupTestDB(t)
		seedVotes(t, db, "fresh", 10, 8, recent)
		seedVotes(t, db, "stale", 10, 8, time.Now().Add(-30*24*time.Hour))

		repo := repository.NewVoteRepository(db)
		summaries, err := repo.GetVoteSummaries(ctx, ratings.TimeframeWeek, nil)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "fresh", summaries[0].SnapID)
	})

	t.Run("unspecified timeframe covers all votes", func(t *testing.T) {
		db := setupTestDB(t)
		seedVotes(t, db, "fresh", 10, 8, recent)
		seedVotes(t, db, "stale", 10, 8, time.Now().Add(-300*24*time.Hour))

		repo := repository.NewVoteRepository(db)
		summaries, err := repo.GetVoteSummaries(ctx, ratings.TimeframeUnspecified, nil)

		require.NoError(t, err)
		assert.Len(t, summaries, 2)
	})

	t.Run("filters by category when requested", func(t *testing.T) {
		db := setupTestDB(t)
		seedVotes(t, db, "game", 10, 8, recent)
		seedVotes(t, db, "editor", 10, 8, recent)
		seedCategory(t, db, "game", ratings.CategoryGames)
		seedCategory(t, db, "editor", ratings.CategoryDevelopment)

		repo := repository.NewVoteRepository(db)
		games := ratings.CategoryGames
		summaries, err := repo.GetVoteSummaries(ctx, ratings.TimeframeWeek, &games)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "game", summaries[0].SnapID)
	})

	t.Run("no votes yields an empty result, not an error", func(t *testing.T) {
		db := setupTestDB(t)

		repo := repository.NewVoteRepository(db)
		summaries, err := repo.GetVoteSummaries(ctx, ratings.TimeframeDay, nil)

		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}
