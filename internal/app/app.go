package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/M7mdisk/app-center-ratings/api/v1"
	"github.com/M7mdisk/app-center-ratings/internal/config"
	handler "github.com/M7mdisk/app-center-ratings/internal/grpc"
	"github.com/M7mdisk/app-center-ratings/internal/ratings"
	"github.com/M7mdisk/app-center-ratings/internal/repository"
	"github.com/M7mdisk/app-center-ratings/internal/service"
	"github.com/M7mdisk/app-center-ratings/internal/snapcraft"
	"github.com/M7mdisk/app-center-ratings/pkg/cache"
	dbbuilder "github.com/M7mdisk/app-center-ratings/pkg/database"
	grpcsrv "github.com/M7mdisk/app-center-ratings/pkg/grpc/server"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	grpcServer *grpcsrv.Server
}

func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	voteRepo := repository.NewVoteRepository(dbPool)
	chartService := service.NewChartService(voteRepo, logger)
	snapcraftClient := snapcraft.NewClient(snapcraft.WithBaseURL(cfg.SnapcraftIOURI))

	// The chart cache lives for the process lifetime and is handed to the
	// handler explicitly; nothing else shares it.
	chartCache := cache.New[ratings.Chart](cache.WithTTL(cfg.ChartTTL))

	grpcHandlers := handler.NewGRPCHandlers(chartService, snapcraftClient, chartCache, logger)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithLogging(true),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterService(func(s *grpc.Server) {
		pb.RegisterChartServer(s, grpcHandlers)
	})

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		grpcServer: grpcServer,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Warn("grpc shutdown error", zap.Error(err))
	}

	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")

	_ = a.logger.Sync()
	return nil
}
