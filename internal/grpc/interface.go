package grpc

import (
	"context"

	"github.com/M7mdisk/app-center-ratings/internal/ratings"
)

// ChartService builds the ranked chart for a timeframe and optional
// category.
type ChartService interface {
	GetChart(ctx context.Context, timeframe ratings.Timeframe, category *ratings.Category) (ratings.Chart, error)
}

// NameResolver resolves a snap id to its display name.
type NameResolver interface {
	SnapName(ctx context.Context, snapID string) (string, error)
}
