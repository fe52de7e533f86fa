package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/logicash/logicash-api/internal/dto"
	"github.com/logicash/logicash-api/internal/model"
	"github.com/logicash/logicash-api/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminAchievementService interface {
	CreateAchievement(req dto.AchievementCreateDTO) (*dto.AchievementDTO, error)
}

type adminAchievementService struct {
	achievementRepo repository.AchievementRepository
}

func NewAdminAchievementService(achievementRepo repository.AchievementRepository) AdminAchievementService {
	return &adminAchievementService{achievementRepo: achievementRepo}
}

func (s *adminAchievementService) CreateAchievement(req dto.AchievementCreateDTO) (*dto.AchievementDTO, error) {
	// A badge with no criterion could never unlock; reject it at the door
	// rather than carry dead data.
	if req.MinPoints == nil && req.MinQuizzes == nil && req.MinAccuracy == nil {
		return nil, fmt.Errorf("achievement %q must define at least one criterion (min_points, min_quizzes or min_accuracy)", req.Name)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	color := req.Color
	if color == "" {
		color = "#008445"
	}

	achievement := model.Achievement{
		Name:             req.Name,
		Description:      req.Description,
		Icon:             req.Icon,
		IconURL:          req.IconURL,
		MinPoints:        req.MinPoints,
		MinQuizzes:       req.MinQuizzes,
		MinAccuracy:      req.MinAccuracy,
		DifficultyFilter: req.DifficultyFilter,
		Active:           active,
		Color:            color,
	}

	if err := s.achievementRepo.Create(&achievement); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create achievement in database")
		return nil, fmt.Errorf("database error creating achievement: %w", err)
	}

	var resp dto.AchievementDTO
	if err := copier.Copy(&resp, &achievement); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}
