package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/logicash/logicash-api/config"
	"github.com/logicash/logicash-api/database"
	adminctrl "github.com/logicash/logicash-api/internal/controller/admin"
	authctrl "github.com/logicash/logicash-api/internal/controller/auth"
	userctrl "github.com/logicash/logicash-api/internal/controller/user"
	"github.com/logicash/logicash-api/internal/logger"
	"github.com/logicash/logicash-api/internal/middleware"
	"github.com/logicash/logicash-api/internal/model"
	"github.com/logicash/logicash-api/internal/repository"
	"github.com/logicash/logicash-api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title LogiCash API
// @version 1.0
// @description Financial-literacy gamification backend: quizzes, points, levels and achievements for students.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // provides *gorm.DB
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewStudentRepository,
			repository.NewQuizRepository,
			repository.NewResultRepository,
			repository.NewScoreRepository,
			repository.NewAchievementRepository,
			repository.NewResetTokenRepository,
		),

		// Services layer
		fx.Provide(
			service.NewLevelService,
			service.NewStatisticsService,
			service.NewAchievementService,
			service.NewQuizService,
			service.NewQuizSubmissionService,
			service.NewDashboardService,
			service.NewAdminQuizService,
			service.NewAdminAchievementService,
			service.NewAuthService,
		),

		// API controllers layer
		fx.Provide(
			authctrl.NewAuthController,
			userctrl.NewQuizController,
			userctrl.NewDashboardController,
			adminctrl.NewAdminQuizController,
			adminctrl.NewAdminAchievementController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // tighten per deployment
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html (run `swag init` to generate docs)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *authctrl.AuthController,
	quizCtrl *userctrl.QuizController,
	dashboardCtrl *userctrl.DashboardController,
	adminQuizCtrl *adminctrl.AdminQuizController,
	adminAchievementCtrl *adminctrl.AdminAchievementController,
) {
	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authCtrl.Signup)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/password-reset", authCtrl.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", authCtrl.ConfirmPasswordReset)
	}

	studentGroup := api.Group("")
	studentGroup.Use(middleware.RequireAuth(cfg))
	{
		studentGroup.GET("/quizzes", quizCtrl.GetQuizzes)
		studentGroup.GET("/quizzes/:quiz_id", quizCtrl.GetQuizDetails)
		studentGroup.POST("/quizzes/:quiz_id/results", quizCtrl.SubmitQuiz)
		studentGroup.GET("/results/:result_id", quizCtrl.GetResultDetails)
		studentGroup.GET("/my-results", quizCtrl.GetMyResults)

		studentGroup.GET("/dashboard", dashboardCtrl.GetDashboard)
		studentGroup.GET("/profile", dashboardCtrl.GetProfile)
		studentGroup.PUT("/profile", dashboardCtrl.UpdateProfile)
	}

	adminGroup := api.Group("/admin")
	{
		adminGroup.POST("/quizzes", adminQuizCtrl.CreateQuiz)
		adminGroup.POST("/achievements", adminAchievementCtrl.CreateAchievement)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("LogiCash API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Quiz{},
		&model.Question{},
		&model.AnswerOption{},
		&model.Result{},
		&model.ScoreRecord{},
		&model.Achievement{},
		&model.AchievementUnlock{},
		&model.PasswordResetToken{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
