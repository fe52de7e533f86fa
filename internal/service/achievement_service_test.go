package service

import (
	"testing"

	"github.com/logicash/logicash-api/internal/model"
	"github.com/logicash/logicash-api/internal/repository"
	"gorm.io/gorm"
)

func seedAchievement(t *testing.T, db *gorm.DB, a model.Achievement) model.Achievement {
	t.Helper()
	if a.Icon == "" {
		a.Icon = "trophy"
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("failed to seed achievement %q: %v", a.Name, err)
	}
	return a
}

func TestEvaluateAndUnlockPointsBoundary(t *testing.T) {
	db := newTestDB(t)
	student := createTestStudent(t, db, "boundary")
	svc := NewAchievementService(repository.NewAchievementRepository(db))

	seedAchievement(t, db, model.Achievement{Name: "Centurion", Description: "Reach 100 points", MinPoints: intPtr(100), Active: true})

	unlocked, err := svc.EvaluateAndUnlock(db, student.ID, 99, StudentStatistics{})
	if err != nil {
		t.Fatalf("EvaluateAndUnlock(99) error: %v", err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("99 points unlocked %d achievements, want 0", len(unlocked))
	}

	unlocked, err = svc.EvaluateAndUnlock(db, student.ID, 100, StudentStatistics{})
	if err != nil {
		t.Fatalf("EvaluateAndUnlock(100) error: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].Name != "Centurion" {
		t.Fatalf("100 points unlocked %v, want exactly Centurion", unlocked)
	}
}

func TestEvaluateAndUnlockIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	student := createTestStudent(t, db, "idempotent")
	svc := NewAchievementService(repository.NewAchievementRepository(db))

	seedAchievement(t, db, model.Achievement{Name: "First Steps", Description: "Earn any points", MinPoints: intPtr(10), Active: true})

	first, err := svc.EvaluateAndUnlock(db, student.ID, 50, StudentStatistics{})
	if err != nil {
		t.Fatalf("first pass error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("first pass unlocked %d, want 1", len(first))
	}

	second, err := svc.EvaluateAndUnlock(db, student.ID, 60, StudentStatistics{})
	if err != nil {
		t.Fatalf("second pass error: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("second pass unlocked %d, want 0", len(second))
	}

	var count int64
	db.Model(&model.AchievementUnlock{}).Where("student_id = ?", student.ID).Count(&count)
	if count != 1 {
		t.Fatalf("unlock rows = %d, want 1", count)
	}
}

func TestEvaluateAndUnlockQuizAndAccuracyCriteria(t *testing.T) {
	db := newTestDB(t)
	student := createTestStudent(t, db, "criteria")
	svc := NewAchievementService(repository.NewAchievementRepository(db))

	seedAchievement(t, db, model.Achievement{Name: "Dedicated", Description: "Complete 5 quizzes", MinQuizzes: intPtr(5), Active: true})
	seedAchievement(t, db, model.Achievement{Name: "Sharp", Description: "Keep 90% accuracy", MinAccuracy: floatPtr(90), Active: true})

	stats := StudentStatistics{CompletedQuizzes: 5, TotalCorrect: 18, TotalQuestions: 20, AccuracyPercent: 90}
	unlocked, err := svc.EvaluateAndUnlock(db, student.ID, 0, stats)
	if err != nil {
		t.Fatalf("EvaluateAndUnlock error: %v", err)
	}
	if len(unlocked) != 2 {
		t.Fatalf("unlocked %d achievements, want 2 (quiz count and accuracy)", len(unlocked))
	}
}

func TestEvaluateAndUnlockAccuracyNeedsAttempts(t *testing.T) {
	db := newTestDB(t)
	student := createTestStudent(t, db, "noattempts")
	svc := NewAchievementService(repository.NewAchievementRepository(db))

	seedAchievement(t, db, model.Achievement{Name: "Flawless", Description: "100% accuracy", MinAccuracy: floatPtr(100), Active: true})

	// Zero questions attempted must not read as perfect accuracy.
	unlocked, err := svc.EvaluateAndUnlock(db, student.ID, 0, StudentStatistics{AccuracyPercent: 0})
	if err != nil {
		t.Fatalf("EvaluateAndUnlock error: %v", err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("unlocked %d achievements with no attempts, want 0", len(unlocked))
	}
}

func TestEvaluateAndUnlockSkipsInactiveAndCriterionless(t *testing.T) {
	db := newTestDB(t)
	student := createTestStudent(t, db, "skips")
	svc := NewAchievementService(repository.NewAchievementRepository(db))

	seedAchievement(t, db, model.Achievement{Name: "Retired", Description: "Disabled badge", MinPoints: intPtr(1), Active: false})
	seedAchievement(t, db, model.Achievement{Name: "Unreachable", Description: "No criteria at all", Active: true})

	unlocked, err := svc.EvaluateAndUnlock(db, student.ID, 1000, StudentStatistics{CompletedQuizzes: 100})
	if err != nil {
		t.Fatalf("EvaluateAndUnlock error: %v", err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("unlocked %v, want none", unlocked)
	}
}
