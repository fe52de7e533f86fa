package service

import (
	"fmt"
	"time"

	"github.com/logicash/logicash-api/internal/model"
	"github.com/logicash/logicash-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AchievementService evaluates achievement eligibility and records unlocks.
type AchievementService interface {
	// EvaluateAndUnlock runs one eligibility pass for the student against the
	// given totals, inside the caller's transaction handle. It returns the
	// achievements newly unlocked by this pass; re-running on unchanged
	// statistics unlocks nothing.
	EvaluateAndUnlock(db *gorm.DB, studentID uint, totalPoints int, stats StudentStatistics) ([]model.Achievement, error)
}

type achievementServiceImpl struct {
	achievementRepo repository.AchievementRepository
}

func NewAchievementService(achievementRepo repository.AchievementRepository) AchievementService {
	return &achievementServiceImpl{achievementRepo: achievementRepo}
}

func (s *achievementServiceImpl) EvaluateAndUnlock(db *gorm.DB, studentID uint, totalPoints int, stats StudentStatistics) ([]model.Achievement, error) {
	candidates, err := s.achievementRepo.FindActiveLocked(db, studentID)
	if err != nil {
		return nil, fmt.Errorf("error loading locked achievements for student %d: %w", studentID, err)
	}

	now := time.Now()
	var unlocked []model.Achievement
	for _, achievement := range candidates {
		if !eligible(&achievement, totalPoints, stats) {
			continue
		}

		inserted, err := s.achievementRepo.InsertUnlock(db, &model.AchievementUnlock{
			StudentID:     studentID,
			AchievementID: achievement.ID,
			UnlockedAt:    now,
		})
		if err != nil {
			return nil, fmt.Errorf("error unlocking achievement %d for student %d: %w", achievement.ID, studentID, err)
		}
		if !inserted {
			// Already unlocked by an earlier pass; nothing to announce.
			continue
		}

		log.Info().Uint("studentID", studentID).Uint("achievementID", achievement.ID).Str("name", achievement.Name).Msg("Achievement unlocked")
		unlocked = append(unlocked, achievement)
	}
	return unlocked, nil
}

// eligible reports whether any one of the achievement's defined criteria is
// satisfied, each with an inclusive >= comparison. An achievement with no
// criteria set never qualifies. The difficulty filter is stored on the model
// but not evaluated yet; per-difficulty statistics are not derived.
func eligible(a *model.Achievement, totalPoints int, stats StudentStatistics) bool {
	if a.MinPoints != nil && totalPoints >= *a.MinPoints {
		return true
	}
	if a.MinQuizzes != nil && stats.CompletedQuizzes >= *a.MinQuizzes {
		return true
	}
	if a.MinAccuracy != nil && stats.TotalQuestions > 0 && stats.AccuracyPercent >= *a.MinAccuracy {
		return true
	}
	return false
}
