package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/logicash/logicash-api/internal/dto"
	"github.com/logicash/logicash-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizService serves the student-facing quiz catalog. Correctness flags and
// explanations never appear in its responses.
type QuizService interface {
	GetActiveQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizDetails(quizID uint) (*dto.QuizDetailDTO, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) GetActiveQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzesWithCount, err := s.quizRepo.FindAllActiveWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list active quizzes from repository")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzesWithCount))
	for _, qwc := range quizzesWithCount {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:               qwc.Quiz.ID,
			Title:            qwc.Quiz.Title,
			Description:      qwc.Quiz.Description,
			Difficulty:       qwc.Quiz.Difficulty,
			Theme:            qwc.Quiz.Theme,
			TimeLimitMinutes: qwc.Quiz.TimeLimitMinutes,
			BasePoints:       qwc.Quiz.BasePoints,
			QuestionCount:    qwc.QuestionCount,
			CreatedAt:        qwc.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *quizService) GetQuizDetails(quizID uint) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("Failed to get quiz details from repository")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}
	if !quiz.Active {
		return nil, fmt.Errorf("quiz not found with ID %d", quizID)
	}

	resp := dto.QuizDetailDTO{
		ID:               quiz.ID,
		Title:            quiz.Title,
		Description:      quiz.Description,
		Difficulty:       quiz.Difficulty,
		Theme:            quiz.Theme,
		TimeLimitMinutes: quiz.TimeLimitMinutes,
		BasePoints:       quiz.BasePoints,
		Questions:        make([]dto.QuestionDTO, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		qDTO := dto.QuestionDTO{
			ID:          q.ID,
			Text:        q.Text,
			OrderInQuiz: q.OrderInQuiz,
			Points:      q.Points,
			Options:     make([]dto.AnswerOptionDTO, 0, len(q.Options)),
		}
		for _, opt := range q.Options {
			var optDTO dto.AnswerOptionDTO
			copier.Copy(&optDTO, &opt)
			optDTO.Order = opt.OrderInQ
			qDTO.Options = append(qDTO.Options, optDTO)
		}
		resp.Questions = append(resp.Questions, qDTO)
	}
	return &resp, nil
}
