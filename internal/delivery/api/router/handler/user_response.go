package handler

import (
	"time"

	"schoolhub/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the JSON shape of a user record.
// Password carries the stored bcrypt hash, which existing clients read back after login.
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	IDNumber       string    `json:"idNumber"`
	DateOfBirth    string    `json:"dateOfBirth"`
	Gender         string    `json:"gender"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	Address        string    `json:"address"`
	Role           string    `json:"role"`
	Password       string    `json:"password"`
	ProfilePicture []byte    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:             user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		IDNumber:       user.IDNumber,
		DateOfBirth:    user.DateOfBirth,
		Gender:         user.Gender,
		Email:          user.Email,
		PhoneNumber:    user.PhoneNumber,
		Address:        user.Address,
		Role:           user.Role.String(),
		Password:       user.PasswordHash,
		ProfilePicture: user.ProfilePhoto,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}
