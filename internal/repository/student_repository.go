package repository

import (
	"errors"

	"github.com/logicash/logicash-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudentRepository interface {
	Create(student *model.Student) error
	FindByID(id uint) (*model.Student, error)
	FindByUserID(userID uint) (*model.Student, error)
	GetOrCreate(userID uint, defaultName string) (*model.Student, error)
	Update(student *model.Student) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByUserID(userID uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.Where("user_id = ?", userID).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// GetOrCreate returns the student profile for a user, creating it on first
// access. The OnConflict guard makes concurrent first accesses converge on a
// single row instead of one of them failing the unique index.
func (r *studentRepository) GetOrCreate(userID uint, defaultName string) (*model.Student, error) {
	student, err := r.FindByUserID(userID)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := model.Student{UserID: userID, Name: defaultName}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return nil, err
	}
	return r.FindByUserID(userID)
}

func (r *studentRepository) Update(student *model.Student) error {
	return r.db.Save(student).Error
}
