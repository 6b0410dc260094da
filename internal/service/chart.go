package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/M7mdisk/app-center-ratings/internal/ratings"
	"go.uber.org/zap"
)

const dbTimeout = 5 * time.Second

// ErrStorageFailure wraps any vote store error. Callers match it with
// errors.Is and must not expose the underlying cause.
var ErrStorageFailure = errors.New("storage failure")

// ChartService builds ranked charts from the vote store. An empty chart is
// a valid result, not an error; absence is the handler's concern.
type ChartService struct {
	storage VoteRepository
	logger  *zap.Logger
}

// NewChartService creates a new ChartService instance.
func NewChartService(storage VoteRepository, logger *zap.Logger) *ChartService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &ChartService{
		storage: storage,
		logger:  logger,
	}
}

// GetChart fetches the ordered vote summaries for the window and maps them
// into a Chart. The summaries arrive pre-ranked; the mapping preserves
// their order.
func (s *ChartService) GetChart(ctx context.Context, timeframe ratings.Timeframe, category *ratings.Category) (ratings.Chart, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	summaries, err := s.storage.GetVoteSummaries(dbCtx, timeframe, category)
	if err != nil {
		return ratings.Chart{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("fetched vote summaries",
		zap.Stringer("timeframe", timeframe),
		zap.Int("snaps", len(summaries)))

	return ratings.NewChart(timeframe, summaries), nil
}
