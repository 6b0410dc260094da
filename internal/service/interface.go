package service

import (
	"context"

	"github.com/M7mdisk/app-center-ratings/internal/ratings"
)

// VoteRepository defines the store operations the chart service needs.
type VoteRepository interface {
	GetVoteSummaries(ctx context.Context, timeframe ratings.Timeframe, category *ratings.Category) ([]ratings.VoteSummary, error)
}
