// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"schoolhub/internal/domain/entity"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/repository"
	"schoolhub/internal/infra/persistence/model"
	"schoolhub/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.Email.Eq(email)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// Create persists a new user. A nil ID is replaced by a fresh UUIDv7.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}

	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateProfile writes only the fields present in changes. The identity number and the
// values derived from it are always written.
func (repo *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, changes *entity.ProfileChanges) error {
	if changes == nil {
		return errors.New("profile changes are required")
	}

	return repo.updateColumns(ctx, id, profileColumns(changes), "failed to update user profile")
}

// UpdatePhoto replaces the stored profile photo.
func (repo *userRepository) UpdatePhoto(ctx context.Context, id uuid.UUID, photo []byte) error {
	return repo.updateColumns(ctx, id, map[string]any{"profile_photo": photo}, "failed to update user photo")
}

func (repo *userRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any, failure string) error {
	columns["updated_at"] = time.Now()

	result, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.ID.Eq(id)).
		Updates(columns)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, failure)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func profileColumns(changes *entity.ProfileChanges) map[string]any {
	columns := map[string]any{
		"id_number":     changes.IDNumber,
		"date_of_birth": changes.DateOfBirth,
		"gender":        changes.Gender,
	}

	optional := map[string]*string{
		"first_name":   changes.FirstName,
		"last_name":    changes.LastName,
		"email":        changes.Email,
		"phone_number": changes.PhoneNumber,
		"address":      changes.Address,
	}
	for column, value := range optional {
		if value != nil {
			columns[column] = *value
		}
	}
	if changes.Role != nil {
		columns["role"] = changes.Role.String()
	}

	return columns
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		IDNumber:     data.IDNumber,
		DateOfBirth:  data.DateOfBirth,
		Gender:       data.Gender,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		Address:      data.Address,
		Role:         entity.Role(data.Role),
		PasswordHash: data.Password,
		ProfilePhoto: data.ProfilePhoto,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		IDNumber:     data.IDNumber,
		DateOfBirth:  data.DateOfBirth,
		Gender:       data.Gender,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		Address:      data.Address,
		Role:         data.Role.String(),
		Password:     data.PasswordHash,
		ProfilePhoto: data.ProfilePhoto,
	}
}
