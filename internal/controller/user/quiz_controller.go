package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/logicash/logicash-api/internal/dto"
	"github.com/logicash/logicash-api/internal/middleware"
	"github.com/logicash/logicash-api/internal/repository"
	"github.com/logicash/logicash-api/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService       service.QuizService
	submissionService service.QuizSubmissionService
	studentRepo       repository.StudentRepository
}

func NewQuizController(
	quizService service.QuizService,
	submissionService service.QuizSubmissionService,
	studentRepo repository.StudentRepository,
) *QuizController {
	return &QuizController{
		quizService:       quizService,
		submissionService: submissionService,
		studentRepo:       studentRepo,
	}
}

// GetQuizzes godoc
// @Summary List active quizzes
// @Tags Quizzes & Results
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) GetQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.GetActiveQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("GetQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizDetails godoc
// @Summary Get a quiz with its ordered questions and options
// @Description Correct answers are not included; they are only revealed through grading.
// @Tags Quizzes & Results
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuizDetails(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}

	details, err := c.quizService.GetQuizDetails(uint(quizID))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// SubmitQuiz godoc
// @Summary Submit a completed quiz attempt
// @Description Grades the chosen options, records the result, adds the earned points to the student's score (recomputing the level) and unlocks any achievements whose criteria are now met. All of it in a single atomic unit.
// @Tags Quizzes & Results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Param submission body dto.QuizSubmissionDTO true "Chosen option per question"
// @Success 200 {object} dto.ResultDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid submission"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{quiz_id}/results [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}

	var req dto.QuizSubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	student, err := c.studentRepo.FindByUserID(middleware.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Student profile not found"})
		return
	}

	log.Info().Uint64("quizID", quizID).Uint("studentID", student.ID).Int("answerCount", len(req.Answers)).Msg("Received quiz submission")

	detail, err := c.submissionService.SubmitQuiz(student.ID, uint(quizID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("quizID", quizID).Msg("SubmitQuiz: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to submit quiz", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetMyResults godoc
// @Summary List the authenticated student's results
// @Tags Quizzes & Results
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResultSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /my-results [get]
func (c *QuizController) GetMyResults(ctx *gin.Context) {
	student, err := c.studentRepo.FindByUserID(middleware.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Student profile not found"})
		return
	}

	results, err := c.submissionService.GetStudentResults(student.ID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", student.ID).Msg("GetMyResults: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve results", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetResultDetails godoc
// @Summary Get one of the authenticated student's results
// @Tags Quizzes & Results
// @Produce json
// @Security BearerAuth
// @Param result_id path int true "Result ID"
// @Success 200 {object} dto.ResultSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Result ID format"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /results/{result_id} [get]
func (c *QuizController) GetResultDetails(ctx *gin.Context) {
	resultID, err := strconv.ParseUint(ctx.Param("result_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Result ID format"})
		return
	}

	student, err := c.studentRepo.FindByUserID(middleware.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Student profile not found"})
		return
	}

	detail, err := c.submissionService.GetResultDetails(student.ID, uint(resultID))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}
