package service

import (
	"context"
	"errors"
	"testing"

	"github.com/M7mdisk/app-center-ratings/internal/ratings"
	"github.com/M7mdisk/app-center-ratings/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestNewChartService tests the constructor
func TestNewChartService(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		mockRepo := &mocks.MockVoteRepository{}
		logger := zap.NewNop()

		svc := NewChartService(mockRepo, logger)

		assert.NotNil(t, svc)
		assert.Equal(t, mockRepo, svc.storage)
		assert.Equal(t, logger, svc.logger)
	})

	t.Run("nil storage panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewChartService(nil, zap.NewNop())
		})
	})

	t.Run("nil logger gets default", func(t *testing.T) {
		svc := NewChartService(&mocks.MockVoteRepository{}, nil)

		assert.NotNil(t, svc)
		assert.NotNil(t, svc.logger)
	})
}

func TestGetChart(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("builds chart in store order", func(t *testing.T) {
		games := ratings.CategoryGames
		mockRepo := &mocks.MockVoteRepository{
			GetVoteSummariesFunc: func(ctx context.Context, timeframe ratings.Timeframe, category *ratings.Category) ([]ratings.VoteSummary, error) {
				assert.Equal(t, ratings.TimeframeWeek, timeframe)
				require.NotNil(t, category)
				assert.Equal(t, games, *category)
				return []ratings.VoteSummary{
					{SnapID: "a", TotalVotes: 500, PositiveVotes: 490},
					{SnapID: "b", TotalVotes: 100, PositiveVotes: 50},
				}, nil
			},
		}
		svc := NewChartService(mockRepo, logger)

		chart, err := svc.GetChart(ctx, ratings.TimeframeWeek, &games)

		require.NoError(t, err)
		assert.Equal(t, ratings.TimeframeWeek, chart.Timeframe)
		require.Len(t, chart.Data, 2)
		assert.Equal(t, "a", chart.Data[0].Rating.SnapID)
		assert.Equal(t, "b", chart.Data[1].Rating.SnapID)
	})

	t.Run("empty store result is a valid empty chart", func(t *testing.T) {
		mockRepo := &mocks.MockVoteRepository{
			GetVoteSummariesFunc: func(ctx context.Context, timeframe ratings.Timeframe, category *ratings.Category) ([]ratings.VoteSummary, error) {
				return nil, nil
			},
		}
		svc := NewChartService(mockRepo, logger)

		chart, err := svc.GetChart(ctx, ratings.TimeframeDay, nil)

		require.NoError(t, err)
		assert.Empty(t, chart.Data)
	})

	t.Run("store failure wraps ErrStorageFailure", func(t *testing.T) {
		mockRepo := &mocks.MockVoteRepository{
			GetVoteSummariesFunc: func(ctx context.Context, timeframe ratings.Timeframe, category *ratings.Category) ([]ratings.VoteSummary, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := NewChartService(mockRepo, logger)

		_, err := svc.GetChart(ctx, ratings.TimeframeMonth, nil)

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}
