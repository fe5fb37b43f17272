package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated in the application as UUIDv7.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	IDNumber     string    `gorm:"column:id_number;type:varchar(32)"`
	DateOfBirth  string    `gorm:"type:varchar(16)"`
	Gender       string    `gorm:"type:varchar(16)"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	PhoneNumber  string    `gorm:"type:varchar(32)"`
	Address      string    `gorm:"type:text"`
	Role         string    `gorm:"type:varchar(32)"`
	Password     string    `gorm:"type:varchar(255);not null"`
	ProfilePhoto []byte    `gorm:"type:bytea"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
