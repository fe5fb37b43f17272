package repository

import "context"

// StatsRepository counts the school's member collections. It never reads users.
type StatsRepository interface {
	CountStudents(ctx context.Context) (int64, error)
	CountTeachers(ctx context.Context) (int64, error)
	CountParents(ctx context.Context) (int64, error)
}
