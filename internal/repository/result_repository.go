package repository

import (
	"github.com/logicash/logicash-api/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(db *gorm.DB, result *model.Result) error
	FindByID(id uint) (*model.Result, error)
	FindAllByStudent(db *gorm.DB, studentID uint) ([]model.Result, error)
	FindRecentCompleted(studentID uint, limit int) ([]model.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(db *gorm.DB, result *model.Result) error {
	return db.Create(result).Error
}

func (r *resultRepository) FindByID(id uint) (*model.Result, error) {
	var result model.Result
	if err := r.db.Preload("Quiz").First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// FindAllByStudent takes a db handle because the statistics pass inside the
// submission transaction must see the result inserted by that transaction.
func (r *resultRepository) FindAllByStudent(db *gorm.DB, studentID uint) ([]model.Result, error) {
	var results []model.Result
	if err := db.Where("student_id = ?", studentID).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) FindRecentCompleted(studentID uint, limit int) ([]model.Result, error) {
	var results []model.Result
	err := r.db.
		Preload("Quiz").
		Where("student_id = ? AND completed = ?", studentID, true).
		Order("taken_at DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}
