package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logicash/logicash-api/internal/dto"
	"github.com/logicash/logicash-api/internal/middleware"
	"github.com/logicash/logicash-api/internal/service"
	"github.com/rs/zerolog/log"
)

type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Get the student dashboard
// @Description Returns profile, score, derived statistics, recent achievement unlocks, next goals and recent results. Profile and score record are created on first access.
// @Tags Dashboard & Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.dashboardService.GetDashboard(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Uint("userID", middleware.UserID(ctx)).Msg("GetDashboard: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load dashboard", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}

// GetProfile godoc
// @Summary Get the authenticated student's profile
// @Tags Dashboard & Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StudentProfileDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [get]
func (c *DashboardController) GetProfile(ctx *gin.Context) {
	profile, err := c.dashboardService.GetProfile(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Uint("userID", middleware.UserID(ctx)).Msg("GetProfile: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load profile", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the authenticated student's profile
// @Tags Dashboard & Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile_data body dto.ProfileUpdateDTO true "Profile fields"
// @Success 200 {object} dto.StudentProfileDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /profile [put]
func (c *DashboardController) UpdateProfile(ctx *gin.Context) {
	var req dto.ProfileUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	profile, err := c.dashboardService.UpdateProfile(middleware.UserID(ctx), req)
	if err != nil {
		log.Warn().Err(err).Uint("userID", middleware.UserID(ctx)).Msg("UpdateProfile: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to update profile", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
