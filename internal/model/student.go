package model

import (
	"time"

	"gorm.io/gorm"
)

// Student extends a User with the learner-facing profile. Exactly one per user.
type Student struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
	Name      string         `json:"name" gorm:"not null"`
	BirthDate *time.Time     `json:"birth_date,omitempty"`
	School    *string        `json:"school,omitempty"`
	Grade     *string        `json:"grade,omitempty"`
	AvatarURL *string        `json:"avatar_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
