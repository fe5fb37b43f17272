// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the school administration system.
type User struct {
	ID           uuid.UUID // Assigned on creation and never changed afterwards.
	FirstName    string
	LastName     string
	IDNumber     string // National identity number; birth date and gender are derived from it on update.
	DateOfBirth  string // YYYY-MM-DD, either supplied at creation or derived from IDNumber.
	Gender       string
	Email        string // Unique across all users; used as the login identifier.
	PhoneNumber  string
	Address      string
	Role         Role
	PasswordHash string // bcrypt hash, never the plaintext.
	ProfilePhoto []byte // Raw image bytes, nil when no photo was uploaded.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPhoto reports whether a profile photo is stored for the user.
func (u *User) HasPhoto() bool {
	return u != nil && len(u.ProfilePhoto) > 0
}

// ProfileChanges describes a partial profile update.
// Nil pointers leave the stored value untouched. IDNumber, DateOfBirth and Gender
// are always written together because the latter two are derived from the first.
type ProfileChanges struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Address     *string
	Role        *Role
	IDNumber    string
	DateOfBirth string
	Gender      string
}
