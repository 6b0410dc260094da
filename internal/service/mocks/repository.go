package mocks

import (
	"context"
	"errors"

	"github.com/M7mdisk/app-center-ratings/internal/ratings"
)

// MockVoteRepository is a mock implementation of the VoteRepository
// interface for testing the service layer.
type MockVoteRepository struct {
	GetVoteSummariesFunc func(ctx context.Context, timeframe ratings.Timeframe, category *ratings.Category) ([]ratings.VoteSummary, error)
}

// GetVoteSummaries implements the VoteRepository interface
func (m *MockVoteRepository) GetVoteSummaries(ctx context.Context, timeframe ratings.Timeframe, category *ratings.Category) ([]ratings.VoteSummary, error) {
	if m.GetVoteSummariesFunc != nil {
		return m.GetVoteSummariesFunc(ctx, timeframe, category)
	}
	return nil, errors.New("GetVoteSummariesFunc not implemented")
}
