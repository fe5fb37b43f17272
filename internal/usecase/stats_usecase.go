package usecase

import (
	"context"

	"schoolhub/internal/domain/entity"
)

// StatsUsecase reports aggregate counts of the school's member collections.
type StatsUsecase interface {
	GetStats(ctx context.Context) (*entity.Stats, error)
}
