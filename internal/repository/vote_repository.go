package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/M7mdisk/app-center-ratings/internal/ratings"
)

// VoteRepository reads per-snap vote aggregates from the votes store.
type VoteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewVoteRepository(db *sql.DB) *VoteRepository {
	return &VoteRepository{db: db, now: time.Now}
}

// GetVoteSummaries aggregates votes within the timeframe window, optionally
// filtered by category, grouped per snap and ranked by the smoothed positive
// ratio. The ordering established here is the chart order; nothing
// downstream re-sorts.
func (r *VoteRepository) GetVoteSummaries(ctx context.Context, timeframe ratings.Timeframe, category *ratings.Category) ([]ratings.VoteSummary, error) {
	query := `
		SELECT
			v.snap_id,
			COUNT(*) AS total_votes,
			SUM(CASE WHEN v.vote_up THEN 1 ELSE 0 END) AS positive_votes
		FROM votes AS v`
	var args []any

	if category != nil {
		query += `
		JOIN snap_categories AS sc ON sc.snap_id = v.snap_id`
	}

	where := ""
	if window, bounded := timeframe.Window(); bounded {
		where = `
		WHERE v.created_at >= ?`
		args = append(args, r.now().Add(-window).UTC())
	}
	if category != nil {
		if where == "" {
			where = `
		WHERE sc.category = ?`
		} else {
			where += ` AND sc.category = ?`
		}
		args = append(args, int32(*category))
	}

	query += where + `
		GROUP BY v.snap_id
		ORDER BY CAST(SUM(CASE WHEN v.vote_up THEN 1 ELSE 0 END) + 1 AS REAL) / (COUNT(*) + 2) DESC, v.snap_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query GetVoteSummaries: %w", err)
	}
	defer rows.Close()

	var summaries []ratings.VoteSummary
	for rows.Next() {
		var s ratings.VoteSummary
		if err := rows.Scan(&s.SnapID, &s.TotalVotes, &s.PositiveVotes); err != nil {
			return nil, fmt.Errorf("scan GetVoteSummaries row: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetVoteSummaries: %w", err)
	}
	return summaries, nil
}
