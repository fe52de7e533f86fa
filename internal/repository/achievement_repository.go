package repository

import (
	"github.com/logicash/logicash-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository interface {
	Create(achievement *model.Achievement) error
	FindActiveLocked(db *gorm.DB, studentID uint) ([]model.Achievement, error)
	FindUnlocked(studentID uint, limit int) ([]model.AchievementUnlock, error)
	FindNextLocked(studentID uint, limit int) ([]model.Achievement, error)
	InsertUnlock(db *gorm.DB, unlock *model.AchievementUnlock) (bool, error)
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Create(achievement *model.Achievement) error {
	return r.db.Create(achievement).Error
}

// FindActiveLocked returns the active achievements the student has not
// unlocked yet, i.e. the candidate set for an eligibility pass.
func (r *achievementRepository) FindActiveLocked(db *gorm.DB, studentID uint) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := db.
		Where("active = ?", true).
		Where("id NOT IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Model(&model.AchievementUnlock{}).
				Select("achievement_id").
				Where("student_id = ?", studentID)).
		Find(&achievements).Error
	return achievements, err
}

func (r *achievementRepository) FindUnlocked(studentID uint, limit int) ([]model.AchievementUnlock, error) {
	var unlocks []model.AchievementUnlock
	query := r.db.
		Preload("Achievement").
		Where("student_id = ?", studentID).
		Order("unlocked_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&unlocks).Error
	return unlocks, err
}

// FindNextLocked lists upcoming goals for the dashboard, nearest point
// threshold first.
func (r *achievementRepository) FindNextLocked(studentID uint, limit int) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.db.
		Where("active = ?", true).
		Where("id NOT IN (?)",
			r.db.Session(&gorm.Session{NewDB: true}).
				Model(&model.AchievementUnlock{}).
				Select("achievement_id").
				Where("student_id = ?", studentID)).
		Order("min_points ASC NULLS LAST").
		Limit(limit).
		Find(&achievements).Error
	return achievements, err
}

// InsertUnlock writes the unlock row at most once per (student, achievement).
// Returns false when the pair already existed, which keeps re-evaluation
// idempotent without a prior read.
func (r *achievementRepository) InsertUnlock(db *gorm.DB, unlock *model.AchievementUnlock) (bool, error) {
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(unlock)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
