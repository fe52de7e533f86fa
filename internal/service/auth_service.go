package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/logicash/logicash-api/config"
	"github.com/logicash/logicash-api/internal/dto"
	"github.com/logicash/logicash-api/internal/model"
	"github.com/logicash/logicash-api/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidResetToken  = errors.New("reset token is invalid, expired or already used")
)

type AuthService interface {
	Signup(req dto.SignupDTO) (*dto.AuthResponseDTO, error)
	Login(req dto.LoginDTO) (*dto.AuthResponseDTO, error)
	// RequestPasswordReset issues a time-boxed single-use token for the given
	// email. The token is returned to the caller for delivery; this service
	// does not send mail.
	RequestPasswordReset(email string) (string, error)
	ConfirmPasswordReset(req dto.PasswordResetConfirmDTO) error
}

type authService struct {
	userRepo    repository.UserRepository
	studentRepo repository.StudentRepository
	scoreRepo   repository.ScoreRepository
	tokenRepo   repository.ResetTokenRepository
	cfg         *config.Config
	db          *gorm.DB
}

func NewAuthService(
	userRepo repository.UserRepository,
	studentRepo repository.StudentRepository,
	scoreRepo repository.ScoreRepository,
	tokenRepo repository.ResetTokenRepository,
	cfg *config.Config,
	db *gorm.DB,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		scoreRepo:   scoreRepo,
		tokenRepo:   tokenRepo,
		cfg:         cfg,
		db:          db,
	}
}

func (s *authService) Signup(req dto.SignupDTO) (*dto.AuthResponseDTO, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	student := model.Student{
		Name:   req.Name,
		School: req.School,
		Grade:  req.Grade,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("username or email already taken: %w", err)
		}
		student.UserID = user.ID
		if err := tx.Create(&student).Error; err != nil {
			return fmt.Errorf("failed to create student profile: %w", err)
		}
		if _, err := s.scoreRepo.GetOrCreate(tx, student.ID); err != nil {
			return fmt.Errorf("failed to create score record: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("Signup failed")
		return nil, err
	}

	log.Info().Uint("userID", user.ID).Str("username", user.Username).Msg("New student signed up")
	return s.authResponse(&user, &student)
}

func (s *authService) Login(req dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.FindByUsername(req.Login)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// The login field doubles as the email address.
		user, err = s.userRepo.FindByEmail(req.Login)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	student, err := s.studentRepo.GetOrCreate(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("error loading student profile: %w", err)
	}
	return s.authResponse(user, student)
}

func (s *authService) RequestPasswordReset(email string) (string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", fmt.Errorf("no account found for email %s: %w", email, err)
	}

	token := model.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.Auth.ResetTokenTTLHours) * time.Hour),
	}
	if err := s.tokenRepo.Create(&token); err != nil {
		return "", fmt.Errorf("failed to issue reset token: %w", err)
	}

	log.Info().Uint("userID", user.ID).Time("expiresAt", token.ExpiresAt).Msg("Password reset token issued")
	return token.Token, nil
}

// ConfirmPasswordReset checks and consumes the token and rewrites the
// password hash in one transaction, so a token can never authorize two
// resets.
func (s *authService) ConfirmPasswordReset(req dto.PasswordResetConfirmDTO) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		token, err := s.tokenRepo.FindByToken(tx, req.Token)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidResetToken
			}
			return fmt.Errorf("error looking up reset token: %w", err)
		}
		if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
			return ErrInvalidResetToken
		}

		consumed, err := s.tokenRepo.MarkUsed(tx, token.ID, time.Now())
		if err != nil {
			return fmt.Errorf("failed to consume reset token: %w", err)
		}
		if !consumed {
			return ErrInvalidResetToken
		}
		if err := s.userRepo.UpdatePassword(tx, token.UserID, string(hash)); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}

		log.Info().Uint("userID", token.UserID).Msg("Password reset completed")
		return nil
	})
}

func (s *authService) authResponse(user *model.User, student *model.Student) (*dto.AuthResponseDTO, error) {
	expiry := time.Duration(s.cfg.Auth.TokenExpiryHours) * time.Hour
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(expiry).Unix(),
		"iat": time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.AuthResponseDTO{
		Token: signed,
		Student: dto.StudentProfileDTO{
			ID:        student.ID,
			Username:  user.Username,
			Email:     user.Email,
			Name:      student.Name,
			BirthDate: student.BirthDate,
			School:    student.School,
			Grade:     student.Grade,
			AvatarURL: student.AvatarURL,
			CreatedAt: student.CreatedAt,
		},
	}, nil
}
