package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	QuizID      uint           `json:"quiz_id" gorm:"not null;index;uniqueIndex:idx_quiz_order"`
	Text        string         `json:"text" gorm:"type:text;not null"`
	Explanation string         `json:"explanation" gorm:"type:text"` // shown after answering, explains the correct option
	OrderInQuiz int            `json:"order_in_quiz" gorm:"not null;default:1;uniqueIndex:idx_quiz_order"`
	Points      int            `json:"points" gorm:"not null;default:1"`
	Options     []AnswerOption `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
