package service

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/logicash/logicash-api/internal/dto"
	"github.com/logicash/logicash-api/internal/model"
	"github.com/logicash/logicash-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	recentUnlocksShown    = 6
	nextAchievementsShown = 3
	recentResultsShown    = 7
)

// DashboardService assembles the read model the student landing page needs:
// profile, score, statistics, recent unlocks, upcoming goals and recent
// results. Profile and score record are lazily created on first access.
type DashboardService interface {
	GetDashboard(userID uint) (*dto.DashboardDTO, error)
	GetProfile(userID uint) (*dto.StudentProfileDTO, error)
	UpdateProfile(userID uint, req dto.ProfileUpdateDTO) (*dto.StudentProfileDTO, error)
}

type dashboardService struct {
	userRepo          repository.UserRepository
	studentRepo       repository.StudentRepository
	scoreRepo         repository.ScoreRepository
	resultRepo        repository.ResultRepository
	achievementRepo   repository.AchievementRepository
	statisticsService StatisticsService
	db                *gorm.DB
}

func NewDashboardService(
	userRepo repository.UserRepository,
	studentRepo repository.StudentRepository,
	scoreRepo repository.ScoreRepository,
	resultRepo repository.ResultRepository,
	achievementRepo repository.AchievementRepository,
	statisticsService StatisticsService,
	db *gorm.DB,
) DashboardService {
	return &dashboardService{
		userRepo:          userRepo,
		studentRepo:       studentRepo,
		scoreRepo:         scoreRepo,
		resultRepo:        resultRepo,
		achievementRepo:   achievementRepo,
		statisticsService: statisticsService,
		db:                db,
	}
}

func (s *dashboardService) GetDashboard(userID uint) (*dto.DashboardDTO, error) {
	student, user, err := s.loadStudent(userID)
	if err != nil {
		return nil, err
	}

	record, err := s.scoreRepo.GetOrCreate(s.db, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading score record: %w", err)
	}

	results, err := s.resultRepo.FindAllByStudent(s.db, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading results: %w", err)
	}
	stats := s.statisticsService.Derive(results)

	unlocks, err := s.achievementRepo.FindUnlocked(student.ID, recentUnlocksShown)
	if err != nil {
		return nil, fmt.Errorf("error loading unlocked achievements: %w", err)
	}
	next, err := s.achievementRepo.FindNextLocked(student.ID, nextAchievementsShown)
	if err != nil {
		return nil, fmt.Errorf("error loading next achievements: %w", err)
	}
	recent, err := s.resultRepo.FindRecentCompleted(student.ID, recentResultsShown)
	if err != nil {
		return nil, fmt.Errorf("error loading recent results: %w", err)
	}

	resp := dto.DashboardDTO{
		Student: profileDTO(student, user),
		Score: dto.ScoreDTO{
			TotalPoints:  record.TotalPoints,
			CurrentLevel: record.CurrentLevel,
			UpdatedAt:    record.UpdatedAt,
		},
		Statistics: dto.StatisticsDTO{
			CompletedQuizzes: stats.CompletedQuizzes,
			TotalCorrect:     stats.TotalCorrect,
			TotalQuestions:   stats.TotalQuestions,
			AccuracyPercent:  stats.AccuracyPercent,
		},
		UnlockedAchievements: make([]dto.UnlockedAchievementDTO, 0, len(unlocks)),
		NextAchievements:     make([]dto.AchievementDTO, 0, len(next)),
		RecentResults:        make([]dto.ResultSummaryDTO, 0, len(recent)),
	}

	for _, unlock := range unlocks {
		var aDTO dto.AchievementDTO
		copier.Copy(&aDTO, &unlock.Achievement)
		resp.UnlockedAchievements = append(resp.UnlockedAchievements, dto.UnlockedAchievementDTO{
			Achievement: aDTO,
			UnlockedAt:  unlock.UnlockedAt,
		})
	}
	for _, a := range next {
		var aDTO dto.AchievementDTO
		copier.Copy(&aDTO, &a)
		resp.NextAchievements = append(resp.NextAchievements, aDTO)
	}
	for _, result := range recent {
		var rDTO dto.ResultSummaryDTO
		copier.Copy(&rDTO, &result)
		rDTO.QuizTitle = result.Quiz.Title
		resp.RecentResults = append(resp.RecentResults, rDTO)
	}
	return &resp, nil
}

func (s *dashboardService) GetProfile(userID uint) (*dto.StudentProfileDTO, error) {
	student, user, err := s.loadStudent(userID)
	if err != nil {
		return nil, err
	}
	profile := profileDTO(student, user)
	return &profile, nil
}

func (s *dashboardService) UpdateProfile(userID uint, req dto.ProfileUpdateDTO) (*dto.StudentProfileDTO, error) {
	student, user, err := s.loadStudent(userID)
	if err != nil {
		return nil, err
	}

	student.Name = req.Name
	student.School = req.School
	student.Grade = req.Grade
	student.AvatarURL = req.AvatarURL
	if req.BirthDate != nil {
		birth, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("invalid birth_date %q, expected YYYY-MM-DD: %w", *req.BirthDate, err)
		}
		student.BirthDate = &birth
	} else {
		student.BirthDate = nil
	}

	if err := s.studentRepo.Update(student); err != nil {
		log.Error().Err(err).Uint("studentID", student.ID).Msg("Failed to update student profile")
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	profile := profileDTO(student, user)
	return &profile, nil
}

func (s *dashboardService) loadStudent(userID uint) (*model.Student, *model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("user not found with ID %d: %w", userID, err)
	}
	student, err := s.studentRepo.GetOrCreate(userID, user.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading student profile: %w", err)
	}
	return student, user, nil
}

func profileDTO(student *model.Student, user *model.User) dto.StudentProfileDTO {
	return dto.StudentProfileDTO{
		ID:        student.ID,
		Username:  user.Username,
		Email:     user.Email,
		Name:      student.Name,
		BirthDate: student.BirthDate,
		School:    student.School,
		Grade:     student.Grade,
		AvatarURL: student.AvatarURL,
		CreatedAt: student.CreatedAt,
	}
}
