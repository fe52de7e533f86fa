package model

import (
	"time"

	"gorm.io/gorm"
)

// Achievement is a badge unlocked when any one of its defined criteria is met.
// All criteria are optional; an achievement with none set can never unlock.
type Achievement struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Name             string         `json:"name" gorm:"not null;uniqueIndex"`
	Description      string         `json:"description" gorm:"type:text;not null"`
	Icon             string         `json:"icon" gorm:"not null"` // icon name, e.g. "trophy", "star"
	IconURL          *string        `json:"icon_url,omitempty"`
	MinPoints        *int           `json:"min_points,omitempty"`
	MinQuizzes       *int           `json:"min_quizzes,omitempty"`
	MinAccuracy      *float64       `json:"min_accuracy,omitempty"` // percent, 0..100
	DifficultyFilter *int           `json:"difficulty_filter,omitempty"`
	Active           bool           `json:"active" gorm:"not null;default:true"`
	Color            string         `json:"color" gorm:"not null;default:'#008445'"` // hex
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
