package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/logicash/logicash-api/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database with the full schema.
// cache=shared keeps the database alive across pooled connections; the pool
// is capped at one connection because sqlite allows a single writer.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Quiz{},
		&model.Question{},
		&model.AnswerOption{},
		&model.Result{},
		&model.ScoreRecord{},
		&model.Achievement{},
		&model.AchievementUnlock{},
		&model.PasswordResetToken{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestStudent(t *testing.T, db *gorm.DB, username string) *model.Student {
	t.Helper()

	user := model.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	student := model.Student{UserID: user.ID, Name: username}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("failed to create test student: %v", err)
	}
	return &student
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
