package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/logicash/logicash-api/internal/dto"
	"github.com/logicash/logicash-api/internal/model"
	"github.com/logicash/logicash-api/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminQuizService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.AdminQuizDTO, error)
}

type adminQuizService struct {
	quizRepo repository.QuizRepository
}

func NewAdminQuizService(quizRepo repository.QuizRepository) AdminQuizService {
	return &adminQuizService{quizRepo: quizRepo}
}

func (s *adminQuizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.AdminQuizDTO, error) {
	if req.Difficulty < 1 || req.Difficulty > 5 {
		return nil, fmt.Errorf("difficulty must be between 1 and 5, got %d", req.Difficulty)
	}

	orderSeen := make(map[int]bool, len(req.Questions))
	questions := make([]model.Question, 0, len(req.Questions))

	for _, qDto := range req.Questions {
		if orderSeen[qDto.OrderInQuiz] {
			return nil, fmt.Errorf("duplicate question order %d", qDto.OrderInQuiz)
		}
		orderSeen[qDto.OrderInQuiz] = true

		correctCount := 0
		optionOrderSeen := make(map[int]bool, len(qDto.Options))
		options := make([]model.AnswerOption, 0, len(qDto.Options))
		for _, oDto := range qDto.Options {
			if optionOrderSeen[oDto.Order] {
				return nil, fmt.Errorf("duplicate option order %d in question %d", oDto.Order, qDto.OrderInQuiz)
			}
			optionOrderSeen[oDto.Order] = true
			if oDto.Correct {
				correctCount++
			}
			options = append(options, model.AnswerOption{
				Text:     oDto.Text,
				Correct:  oDto.Correct,
				OrderInQ: oDto.Order,
			})
		}
		if correctCount != 1 {
			return nil, fmt.Errorf("question %d must have exactly one correct option, got %d", qDto.OrderInQuiz, correctCount)
		}

		questions = append(questions, model.Question{
			Text:        qDto.Text,
			Explanation: qDto.Explanation,
			OrderInQuiz: qDto.OrderInQuiz,
			Points:      qDto.Points,
			Options:     options,
		})
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	quiz := model.Quiz{
		Title:            req.Title,
		Description:      req.Description,
		Difficulty:       req.Difficulty,
		Theme:            req.Theme,
		TimeLimitMinutes: req.TimeLimitMinutes,
		BasePoints:       req.BasePoints,
		Active:           active,
		Questions:        questions,
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Msg("Failed to create quiz in database")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	created, err := s.quizRepo.FindByIDWithQuestions(quiz.ID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("Failed to reload created quiz for response")
		created = &quiz
	}

	var resp dto.AdminQuizDTO
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	for i, q := range created.Questions {
		for j, opt := range q.Options {
			resp.Questions[i].Options[j].Order = opt.OrderInQ
		}
	}
	return &resp, nil
}
