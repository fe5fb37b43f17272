package postgres

import (
	"context"

	"schoolhub/internal/domain/repository"
	"schoolhub/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type statsRepository struct {
	q *query.Query
}

// NewStatsRepository counts rows of the students, teachers and parents tables.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{
		q: query.Use(db),
	}
}

func (repo *statsRepository) CountStudents(ctx context.Context) (int64, error) {
	return wrapCount(repo.q.StudentModel.WithContext(ctx).Count())
}

func (repo *statsRepository) CountTeachers(ctx context.Context) (int64, error) {
	return wrapCount(repo.q.TeacherModel.WithContext(ctx).Count())
}

func (repo *statsRepository) CountParents(ctx context.Context) (int64, error) {
	return wrapCount(repo.q.ParentModel.WithContext(ctx).Count())
}

func wrapCount(total int64, err error) (int64, error) {
	if err != nil {
		return 0, errors.Wrap(err, "failed to count rows")
	}

	return total, nil
}
