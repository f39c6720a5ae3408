package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v4().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name                 string    `gorm:"type:varchar(100);not null"`
	Email                string    `gorm:"type:varchar(255);unique;not null"`
	Photo                string    `gorm:"type:varchar(255);not null"`
	Role                 string    `gorm:"type:varchar(20);not null"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	PasswordChangedAt    *time.Time
	PasswordResetToken   *string `gorm:"type:varchar(64);index"`
	PasswordResetExpires *time.Time
	ConfirmToken         *string `gorm:"type:varchar(64);index"`
	Confirmed            bool
	Active               bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
