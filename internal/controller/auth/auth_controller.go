package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logicash/logicash-api/internal/dto"
	"github.com/logicash/logicash-api/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup godoc
// @Summary Create a new student account
// @Description Registers a user with its student profile and an empty score record, and returns a login token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup_data body dto.SignupDTO true "Account data"
// @Success 201 {object} dto.AuthResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or username/email already taken"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Signup(req)
	if err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("Signup: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create account", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Log in with username or email
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Username (or email) and password"
// @Success 200 {object} dto.AuthResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid username or password"})
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to log in"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RequestPasswordReset godoc
// @Summary Request a password reset token
// @Description Issues a time-boxed, single-use reset token for the account matching the email. The response is the same whether or not the account exists.
// @Tags Auth
// @Accept json
// @Produce json
// @Param reset_request body dto.PasswordResetRequestDTO true "Account email"
// @Success 202 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /auth/password-reset [post]
func (c *AuthController) RequestPasswordReset(ctx *gin.Context) {
	var req dto.PasswordResetRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	// Token delivery (email) happens out-of-band; an unknown email gets the
	// same response so the endpoint cannot be used to probe for accounts.
	if _, err := c.authService.RequestPasswordReset(req.Email); err != nil {
		log.Warn().Err(err).Msg("RequestPasswordReset: no token issued")
	}
	ctx.JSON(http.StatusAccepted, gin.H{"message": "If the email is registered, reset instructions have been sent."})
}

// ConfirmPasswordReset godoc
// @Summary Reset the password with a previously issued token
// @Tags Auth
// @Accept json
// @Produce json
// @Param confirm_data body dto.PasswordResetConfirmDTO true "Reset token and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse "Invalid, expired or already used token"
// @Router /auth/password-reset/confirm [post]
func (c *AuthController) ConfirmPasswordReset(ctx *gin.Context) {
	var req dto.PasswordResetConfirmDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.authService.ConfirmPasswordReset(req); err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Reset token is invalid, expired or already used"})
			return
		}
		log.Error().Err(err).Msg("ConfirmPasswordReset: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to reset password"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Password reset successfully."})
}
