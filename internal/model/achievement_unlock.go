package model

import (
	"time"
)

// AchievementUnlock marks that a student has unlocked an achievement.
// Rows are written at most once per (student, achievement) and never deleted.
type AchievementUnlock struct {
	ID            uint        `gorm:"primarykey" json:"id"`
	StudentID     uint        `json:"student_id" gorm:"not null;uniqueIndex:idx_student_achievement"`
	Student       Student     `json:"-" gorm:"foreignKey:StudentID"`
	AchievementID uint        `json:"achievement_id" gorm:"not null;uniqueIndex:idx_student_achievement"`
	Achievement   Achievement `json:"achievement,omitempty" gorm:"foreignKey:AchievementID"`
	UnlockedAt    time.Time   `json:"unlocked_at" gorm:"autoCreateTime"`
}
