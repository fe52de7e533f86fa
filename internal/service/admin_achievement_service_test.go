package service

import (
	"testing"

	"github.com/logicash/logicash-api/internal/dto"
	"github.com/logicash/logicash-api/internal/repository"
)

func TestAdminCreateAchievement(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminAchievementService(repository.NewAchievementRepository(db))

	created, err := svc.CreateAchievement(dto.AchievementCreateDTO{
		Name:        "Saver",
		Description: "Reach 500 points",
		Icon:        "piggy-bank",
		MinPoints:   intPtr(500),
	})
	if err != nil {
		t.Fatalf("CreateAchievement error: %v", err)
	}
	if created.ID == 0 {
		t.Error("created achievement has no ID")
	}
	if created.Color != "#008445" {
		t.Errorf("Color = %q, want default %q", created.Color, "#008445")
	}
	if created.MinPoints == nil || *created.MinPoints != 500 {
		t.Errorf("MinPoints = %v, want 500", created.MinPoints)
	}
}

func TestAdminCreateAchievementNeedsCriterion(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminAchievementService(repository.NewAchievementRepository(db))

	_, err := svc.CreateAchievement(dto.AchievementCreateDTO{
		Name:        "Impossible",
		Description: "A badge nobody could ever earn",
		Icon:        "question",
	})
	if err == nil {
		t.Fatal("CreateAchievement accepted an achievement with no criteria")
	}
}

func TestAdminCreateAchievementDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminAchievementService(repository.NewAchievementRepository(db))

	req := dto.AchievementCreateDTO{
		Name:        "Unique",
		Description: "First of its name",
		Icon:        "star",
		MinQuizzes:  intPtr(1),
	}
	if _, err := svc.CreateAchievement(req); err != nil {
		t.Fatalf("first CreateAchievement error: %v", err)
	}
	if _, err := svc.CreateAchievement(req); err == nil {
		t.Fatal("CreateAchievement accepted a duplicate name")
	}
}
