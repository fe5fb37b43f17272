// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"schoolhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to create an account.
type CreateAccountInput struct {
	FirstName    string
	LastName     string
	IDNumber     string
	DateOfBirth  string
	Gender       string
	Email        string
	PhoneNumber  string
	Address      string
	Role         entity.Role
	Password     string
	ProfilePhoto []byte
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput is a partial profile update. Nil fields are left unchanged.
// Date of birth and gender are always re-derived from IDNumber.
type UpdateProfileInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Address     *string
	Role        *entity.Role
	IDNumber    string
}

// UploadPhotoInput carries a base64 encoded image.
type UploadPhotoInput struct {
	Image string
}

// --- Output DTOs ---

// LoginOutput returns the bearer token and the authenticated user.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// ProfileOutput returns the caller's record and the photo re-encoded as base64.
// Photo is empty when none is stored; User is nil when the record no longer exists.
type ProfileOutput struct {
	Photo string
	User  *entity.User
}

// AccountUsecase defines the account operations the delivery layer depends on.
// The caller identity is passed explicitly after the auth middleware has verified it.
type AccountUsecase interface {
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	UploadPhoto(ctx context.Context, userID uuid.UUID, input *UploadPhotoInput) (*entity.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
}
