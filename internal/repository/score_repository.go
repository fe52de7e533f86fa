package repository

import (
	"errors"

	"github.com/logicash/logicash-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoreRepository interface {
	FindByStudent(studentID uint) (*model.ScoreRecord, error)
	GetOrCreate(db *gorm.DB, studentID uint) (*model.ScoreRecord, error)
	AddPoints(db *gorm.DB, studentID uint, delta int) (*model.ScoreRecord, error)
	SetLevel(db *gorm.DB, studentID uint, level int) error
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) FindByStudent(studentID uint) (*model.ScoreRecord, error) {
	var record model.ScoreRecord
	if err := r.db.Where("student_id = ?", studentID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// GetOrCreate lazily creates the score record at zero points / level 1.
// Safe under concurrent first submissions: losers of the insert race fall
// through to the re-read.
func (r *scoreRepository) GetOrCreate(db *gorm.DB, studentID uint) (*model.ScoreRecord, error) {
	var record model.ScoreRecord
	err := db.Where("student_id = ?", studentID).First(&record).Error
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := model.ScoreRecord{StudentID: studentID, TotalPoints: 0, CurrentLevel: 1}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return nil, err
	}
	if err := db.Where("student_id = ?", studentID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// AddPoints applies the delta with an in-database increment. The UPDATE's row
// lock serializes concurrent submissions for the same student until the
// surrounding transaction commits, so no increment can be lost. The returned
// record is re-read inside the same handle and reflects the new total.
func (r *scoreRepository) AddPoints(db *gorm.DB, studentID uint, delta int) (*model.ScoreRecord, error) {
	err := db.Model(&model.ScoreRecord{}).
		Where("student_id = ?", studentID).
		UpdateColumn("total_points", gorm.Expr("total_points + ?", delta)).Error
	if err != nil {
		return nil, err
	}

	var record model.ScoreRecord
	if err := db.Where("student_id = ?", studentID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *scoreRepository) SetLevel(db *gorm.DB, studentID uint, level int) error {
	return db.Model(&model.ScoreRecord{}).
		Where("student_id = ?", studentID).
		Update("current_level", level).Error
}
