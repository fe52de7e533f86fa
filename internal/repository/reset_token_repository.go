package repository

import (
	"time"

	"github.com/logicash/logicash-api/internal/model"
	"gorm.io/gorm"
)

type ResetTokenRepository interface {
	Create(token *model.PasswordResetToken) error
	FindByToken(db *gorm.DB, token string) (*model.PasswordResetToken, error)
	MarkUsed(db *gorm.DB, id uint, at time.Time) (bool, error)
}

type resetTokenRepository struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

func (r *resetTokenRepository) Create(token *model.PasswordResetToken) error {
	return r.db.Create(token).Error
}

func (r *resetTokenRepository) FindByToken(db *gorm.DB, token string) (*model.PasswordResetToken, error) {
	var record model.PasswordResetToken
	if err := db.Where("token = ?", token).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// MarkUsed stamps the token exactly once; the used_at guard makes a second
// consume attempt report false instead of silently succeeding.
func (r *resetTokenRepository) MarkUsed(db *gorm.DB, id uint, at time.Time) (bool, error) {
	res := db.Model(&model.PasswordResetToken{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", at)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
