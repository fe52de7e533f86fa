package model

import (
	"time"

	"gorm.io/gorm"
)

type AnswerOption struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Text       string         `json:"text" gorm:"not null"`
	Correct    bool           `json:"correct" gorm:"not null;default:false"`
	OrderInQ   int            `json:"order" gorm:"column:order_in_question;not null;default:1"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
