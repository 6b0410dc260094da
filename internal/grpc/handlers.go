package grpc

import (
	"context"
	"fmt"

	pb "github.com/M7mdisk/app-center-ratings/api/v1"
	"github.com/M7mdisk/app-center-ratings/internal/ratings"
	"github.com/M7mdisk/app-center-ratings/pkg/cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type GRPCHandlers struct {
	pb.UnimplementedChartServer
	charts     ChartService
	names      NameResolver
	chartCache *cache.Memo[ratings.Chart]
	logger     *zap.Logger
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(charts ChartService, names NameResolver, chartCache *cache.Memo[ratings.Chart], logger *zap.Logger) *GRPCHandlers {
	if charts == nil {
		panic("nil ChartService provided to NewGRPCHandlers")
	}
	if names == nil {
		panic("nil NameResolver provided to NewGRPCHandlers")
	}
	if chartCache == nil {
		chartCache = cache.New[ratings.Chart]()
	}
	return &GRPCHandlers{
		charts:     charts,
		names:      names,
		chartCache: chartCache,
		logger:     logger.Named("grpc-handler"),
	}
}

func chartKey(category *ratings.Category, timeframe ratings.Timeframe) string {
	if category == nil {
		return fmt.Sprintf("chart:all:%s", timeframe)
	}
	return fmt.Sprintf("chart:%s:%s", *category, timeframe)
}

// GetChart returns the ranked chart for the requested window, each entry
// enriched with its snap's display name.
func (s *GRPCHandlers) GetChart(ctx context.Context, req *pb.GetChartRequest) (*pb.GetChartResponse, error) {
	// Category decoding is strict: there is no sensible default to fall
	// back to, so an unknown ordinal is rejected before anything is
	// computed. Timeframes have a defined default and decode leniently.
	var category *ratings.Category
	if req.Category != nil {
		c, ok := ratings.CategoryFromRepr(req.GetCategory())
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "invalid category value")
		}
		category = &c
	}

	timeframe := ratings.TimeframeFromRepr(req.GetTimeframe())

	key := chartKey(category, timeframe)
	chart, err := s.chartCache.GetOrCompute(ctx, key, func(fetchCtx context.Context) (ratings.Chart, error) {
		return s.charts.GetChart(fetchCtx, timeframe, category)
	})
	if err != nil {
		s.logger.Error("unable to fetch vote summaries",
			zap.String("key", key),
			zap.Error(err))
		return nil, status.Error(codes.Internal, "internal server error")
	}

	if len(chart.Data) == 0 {
		return nil, status.Error(codes.NotFound, "cannot find data for given timeframe")
	}

	orderedChartData, err := s.enrich(ctx, chart.Data)
	if err != nil {
		s.logger.Error("snap name enrichment failed",
			zap.String("key", key),
			zap.Error(err))
		return nil, status.Error(codes.Internal, "internal server error")
	}

	resp := &pb.GetChartResponse{
		Timeframe:        int32(timeframe),
		OrderedChartData: orderedChartData,
	}
	if category != nil {
		c := int32(*category)
		resp.Category = &c
	}
	return resp, nil
}

// enrich resolves every entry's snap name concurrently. Results are
// written positionally so the response keeps the chart's order no matter
// which lookups finish first; the first failure cancels the rest and fails
// the whole batch.
func (s *GRPCHandlers) enrich(ctx context.Context, data []ratings.ChartData) ([]*pb.ChartData, error) {
	out := make([]*pb.ChartData, len(data))

	g, gctx := errgroup.WithContext(ctx)
	for i, chartData := range data {
		i, chartData := i, chartData
		g.Go(func() error {
			snapName, err := s.names.SnapName(gctx, chartData.Rating.SnapID)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", chartData.Rating.SnapID, err)
			}
			out[i] = toProtoChartData(chartData, snapName)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
