package model

import (
	"time"

	"gorm.io/gorm"
)

// Quiz is a financial-education quiz with ordered questions.
type Quiz struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description" gorm:"type:text"`
	Difficulty       int            `json:"difficulty" gorm:"not null"` // 1..5
	Theme            string         `json:"theme" gorm:"not null"`      // e.g. "Savings", "Investments", "Credit Cards"
	TimeLimitMinutes *int           `json:"time_limit_minutes,omitempty"`
	BasePoints       int            `json:"base_points" gorm:"not null;default:10"`
	Active           bool           `json:"active" gorm:"not null;default:true"`
	Questions        []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
