package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logicash/logicash-api/internal/dto"
	"github.com/logicash/logicash-api/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminAchievementController struct {
	adminAchievementService service.AdminAchievementService
}

func NewAdminAchievementController(adminAchievementService service.AdminAchievementService) *AdminAchievementController {
	return &AdminAchievementController{adminAchievementService: adminAchievementService}
}

// CreateAchievement godoc
// @Summary (Admin) Create a new achievement
// @Description At least one criterion (min_points, min_quizzes, min_accuracy) must be set.
// @Tags Admin
// @Accept json
// @Produce json
// @Param achievement_data body dto.AchievementCreateDTO true "Achievement definition"
// @Success 201 {object} dto.AchievementDTO "Achievement created"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data (e.g. no criterion set)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/achievements [post]
func (c *AdminAchievementController) CreateAchievement(ctx *gin.Context) {
	var req dto.AchievementCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateAchievement: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	achievement, err := c.adminAchievementService.CreateAchievement(req)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Admin CreateAchievement: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create achievement", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, achievement)
}
