package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. A user reviews a tour at most once.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Review    string    `gorm:"type:text;not null"`
	Rating    float64   `gorm:"not null"`
	TourID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:reviews_tour_id_user_id_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:reviews_tour_id_user_id_key"`
	CreatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
	Tour *TourModel `gorm:"foreignKey:TourID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
