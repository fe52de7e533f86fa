package model

import (
	"time"

	"gorm.io/gorm"
)

// Result records one pass of a student through a quiz.
type Result struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	StudentID        uint           `json:"student_id" gorm:"not null;index"`
	Student          Student        `json:"-" gorm:"foreignKey:StudentID"`
	QuizID           uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz             Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	PointsEarned     int            `json:"points_earned" gorm:"not null;default:0"`
	TotalQuestions   int            `json:"total_questions" gorm:"not null"`
	CorrectAnswers   int            `json:"correct_answers" gorm:"not null;default:0"` // always <= TotalQuestions
	TimeSpentSeconds *int           `json:"time_spent_seconds,omitempty"`
	Completed        bool           `json:"completed" gorm:"not null;default:false"`
	TakenAt          time.Time      `json:"taken_at" gorm:"autoCreateTime;index"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
