package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/logicash/logicash-api/internal/dto"
	"github.com/logicash/logicash-api/internal/model"
	"github.com/logicash/logicash-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizSubmissionService handles quiz attempt ingestion: grading, result
// persistence, score/level update and the achievement unlock pass, all as one
// atomic unit per submission.
type QuizSubmissionService interface {
	SubmitQuiz(studentID uint, quizID uint, req dto.QuizSubmissionDTO) (*dto.ResultDetailDTO, error)
	GetResultDetails(studentID uint, resultID uint) (*dto.ResultSummaryDTO, error)
	GetStudentResults(studentID uint) ([]dto.ResultSummaryDTO, error)
}

type quizSubmissionService struct {
	quizRepo           repository.QuizRepository
	resultRepo         repository.ResultRepository
	scoreRepo          repository.ScoreRepository
	levelService       LevelService
	statisticsService  StatisticsService
	achievementService AchievementService
	db                 *gorm.DB
}

func NewQuizSubmissionService(
	quizRepo repository.QuizRepository,
	resultRepo repository.ResultRepository,
	scoreRepo repository.ScoreRepository,
	levelService LevelService,
	statisticsService StatisticsService,
	achievementService AchievementService,
	db *gorm.DB,
) QuizSubmissionService {
	return &quizSubmissionService{
		quizRepo:           quizRepo,
		resultRepo:         resultRepo,
		scoreRepo:          scoreRepo,
		levelService:       levelService,
		statisticsService:  statisticsService,
		achievementService: achievementService,
		db:                 db,
	}
}

// gradedAttempt is the outcome of checking a submission against the quiz
// content, before anything is persisted.
type gradedAttempt struct {
	totalQuestions int
	correctAnswers int
	pointsEarned   int
}

// SubmitQuiz validates and grades the attempt, then applies all of its
// effects in a single transaction: the result row, the point increment with
// the recomputed level, and any newly earned achievement unlocks. Either the
// whole set commits or none of it does.
func (s *quizSubmissionService) SubmitQuiz(studentID uint, quizID uint, req dto.QuizSubmissionDTO) (*dto.ResultDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("SubmitQuiz: quiz not found")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}
	if !quiz.Active {
		return nil, fmt.Errorf("quiz %d is not active", quizID)
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("quiz %d has no questions, submission is not possible", quizID)
	}

	graded, err := gradeAttempt(quiz, req.Answers)
	if err != nil {
		return nil, err
	}

	result := model.Result{
		StudentID:        studentID,
		QuizID:           quizID,
		PointsEarned:     graded.pointsEarned,
		TotalQuestions:   graded.totalQuestions,
		CorrectAnswers:   graded.correctAnswers,
		TimeSpentSeconds: req.TimeSpentSeconds,
		Completed:        true,
	}

	var record *model.ScoreRecord
	var newAchievements []model.Achievement

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.scoreRepo.GetOrCreate(tx, studentID); err != nil {
			return fmt.Errorf("failed to load score record: %w", err)
		}
		if err := s.resultRepo.Create(tx, &result); err != nil {
			return fmt.Errorf("failed to record result: %w", err)
		}

		record, err = s.scoreRepo.AddPoints(tx, studentID, graded.pointsEarned)
		if err != nil {
			return fmt.Errorf("failed to apply points: %w", err)
		}

		record.CurrentLevel = s.levelService.CalculateLevel(record.TotalPoints)
		if err := s.scoreRepo.SetLevel(tx, studentID, record.CurrentLevel); err != nil {
			return fmt.Errorf("failed to store level: %w", err)
		}

		results, err := s.resultRepo.FindAllByStudent(tx, studentID)
		if err != nil {
			return fmt.Errorf("failed to load results for statistics: %w", err)
		}
		stats := s.statisticsService.Derive(results)

		newAchievements, err = s.achievementService.EvaluateAndUnlock(tx, studentID, record.TotalPoints, stats)
		return err
	})
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Uint("quizID", quizID).Msg("SubmitQuiz: transaction failed, nothing was recorded")
		return nil, err
	}

	log.Info().
		Uint("studentID", studentID).
		Uint("quizID", quizID).
		Int("pointsEarned", graded.pointsEarned).
		Int("correct", graded.correctAnswers).
		Int("newAchievements", len(newAchievements)).
		Msg("Quiz submission recorded")

	resp := dto.ResultDetailDTO{
		Score: dto.ScoreDTO{
			TotalPoints:  record.TotalPoints,
			CurrentLevel: record.CurrentLevel,
			UpdatedAt:    record.UpdatedAt,
		},
		NewAchievements: make([]dto.AchievementDTO, 0, len(newAchievements)),
	}
	copier.Copy(&resp.Result, &result)
	resp.Result.QuizTitle = quiz.Title
	for _, a := range newAchievements {
		var aDTO dto.AchievementDTO
		copier.Copy(&aDTO, &a)
		resp.NewAchievements = append(resp.NewAchievements, aDTO)
	}
	return &resp, nil
}

// gradeAttempt checks each submitted answer against the quiz content. A
// question is correct when the chosen option carries the correctness flag;
// unanswered questions count as incorrect. Points earned are the quiz's base
// points plus the points of every correctly answered question.
func gradeAttempt(quiz *model.Quiz, answers []dto.AnswerSubmissionDTO) (*gradedAttempt, error) {
	type questionContent struct {
		question *model.Question
		options  map[uint]*model.AnswerOption
	}
	content := make(map[uint]questionContent, len(quiz.Questions))
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		options := make(map[uint]*model.AnswerOption, len(q.Options))
		for j := range q.Options {
			options[q.Options[j].ID] = &q.Options[j]
		}
		content[q.ID] = questionContent{question: q, options: options}
	}

	answered := make(map[uint]bool, len(answers))
	graded := gradedAttempt{totalQuestions: len(quiz.Questions), pointsEarned: quiz.BasePoints}

	for _, ans := range answers {
		qc, ok := content[ans.QuestionID]
		if !ok {
			return nil, fmt.Errorf("question %d does not belong to quiz %d", ans.QuestionID, quiz.ID)
		}
		if answered[ans.QuestionID] {
			return nil, fmt.Errorf("duplicate answer for question %d", ans.QuestionID)
		}
		answered[ans.QuestionID] = true

		option, ok := qc.options[ans.AnswerOptionID]
		if !ok {
			return nil, fmt.Errorf("answer option %d does not belong to question %d", ans.AnswerOptionID, ans.QuestionID)
		}
		if option.Correct {
			graded.correctAnswers++
			graded.pointsEarned += qc.question.Points
		}
	}
	return &graded, nil
}

func (s *quizSubmissionService) GetResultDetails(studentID uint, resultID uint) (*dto.ResultSummaryDTO, error) {
	result, err := s.resultRepo.FindByID(resultID)
	if err != nil {
		return nil, fmt.Errorf("result not found with ID %d: %w", resultID, err)
	}
	if result.StudentID != studentID {
		// Students only ever see their own history.
		return nil, fmt.Errorf("result not found with ID %d: %w", resultID, gorm.ErrRecordNotFound)
	}

	var resp dto.ResultSummaryDTO
	copier.Copy(&resp, result)
	resp.QuizTitle = result.Quiz.Title
	return &resp, nil
}

func (s *quizSubmissionService) GetStudentResults(studentID uint) ([]dto.ResultSummaryDTO, error) {
	results, err := s.resultRepo.FindAllByStudent(s.db, studentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching results for student %d: %w", studentID, err)
	}

	dtos := make([]dto.ResultSummaryDTO, 0, len(results))
	for _, result := range results {
		var summary dto.ResultSummaryDTO
		copier.Copy(&summary, &result)
		dtos = append(dtos, summary)
	}
	return dtos, nil
}
