package mocks

import (
	"context"
	"errors"

	"github.com/M7mdisk/app-center-ratings/internal/ratings"
)

// MockChartService is a mock implementation of the ChartService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockChartService struct {
	GetChartFunc func(ctx context.Context, timeframe ratings.Timeframe, category *ratings.Category) (ratings.Chart, error)
}

// GetChart implements the ChartService interface
func (m *MockChartService) GetChart(ctx context.Context, timeframe ratings.Timeframe, category *ratings.Category) (ratings.Chart, error) {
	if m.GetChartFunc != nil {
		return m.GetChartFunc(ctx, timeframe, category)
	}
	return ratings.Chart{}, errors.New("GetChartFunc not implemented")
}

// MockNameResolver is a mock implementation of the NameResolver interface.
type MockNameResolver struct {
	SnapNameFunc func(ctx context.Context, snapID string) (string, error)
}

// SnapName implements the NameResolver interface
func (m *MockNameResolver) SnapName(ctx context.Context, snapID string) (string, error) {
	if m.SnapNameFunc != nil {
		return m.SnapNameFunc(ctx, snapID)
	}
	return "", errors.New("SnapNameFunc not implemented")
}
