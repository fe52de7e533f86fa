package model

import (
	"time"
)

// ScoreRecord is the running point total and derived level for one student.
// Created lazily with zero points / level 1, and TotalPoints and CurrentLevel
// are only ever written together inside the same transaction.
type ScoreRecord struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	StudentID    uint      `json:"student_id" gorm:"not null;uniqueIndex"`
	Student      Student   `json:"-" gorm:"foreignKey:StudentID"`
	TotalPoints  int       `json:"total_points" gorm:"not null;default:0"`
	CurrentLevel int       `json:"current_level" gorm:"not null;default:1"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
