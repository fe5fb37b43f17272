package impl

import (
	"context"
	"log/slog"

	deliverycontext "schoolhub/internal/delivery/context"
	"schoolhub/internal/domain/entity"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/repository"
	"schoolhub/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type statsService struct {
	statsRepo repository.StatsRepository
	logger    *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	StatsRepo repository.StatsRepository
	Logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		statsRepo: params.StatsRepo,
		logger:    params.Logger,
	}
}

// GetStats counts students, teachers and parents concurrently.
func (srv *statsService) GetStats(ctx context.Context) (*entity.Stats, error) {
	var stats entity.Stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TotalStudents, err = srv.statsRepo.CountStudents(gctx)

		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalTeachers, err = srv.statsRepo.CountTeachers(gctx)

		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalParents, err = srv.statsRepo.CountParents(gctx)

		return err
	})

	if err := g.Wait(); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to count members", slog.Any("error", err))

		return nil, domainerrors.ErrStatsFailed.Because(err)
	}

	return &stats, nil
}
