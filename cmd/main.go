package main

import (
	"context"
	"net/http"
	"time"

	"github.com/dharunks/insightiq/config"
	"github.com/dharunks/insightiq/database"
	_ "github.com/dharunks/insightiq/docs" // Swagger docs
	"github.com/dharunks/insightiq/internal/controller"
	"github.com/dharunks/insightiq/internal/logger"
	"github.com/dharunks/insightiq/internal/metrics"
	"github.com/dharunks/insightiq/internal/model"
	"github.com/dharunks/insightiq/internal/repository"
	"github.com/dharunks/insightiq/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title InsightIQ Interview Practice API
// @version 1.0
// @description API for AI-assisted interview practice: interview lifecycle, response analysis, score aggregation, badges, stats and leaderboards.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewRedisClient,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewInterviewRepository,
			repository.NewQuestionRepository,
			repository.NewBadgeRepository,
		),

		fx.Provide(
			service.NewQuestionBankService,
			service.NewScoreAggregatorService,
			service.NewGeminiAnalyzerService,
			service.NewLocalMediaService,
			func() *service.BadgeEvaluator {
				return service.NewBadgeEvaluator(service.DefaultBadgeDefinitions())
			},
			service.NewBadgeService,
			service.NewProfileService,
			service.NewLeaderboardService,
			service.NewUserService,
			service.NewInterviewService,
		),

		fx.Provide(
			controller.NewInterviewController,
			controller.NewUserController,
			controller.NewLeaderboardController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewRedisClient returns nil when no redis address is configured; the
// leaderboard degrades to disabled in that case.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	r := gin.New()

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
	r.Use(metrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.Static("/media", cfg.Media.Dir)

	return r
}

// RegisterRoutesAndStartServer wires the API routes and ties the HTTP server
// to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	interviewCtrl *controller.InterviewController,
	userCtrl *controller.UserController,
	leaderboardCtrl *controller.LeaderboardController,
) {
	api := router.Group("/api/v1")
	{
		interviews := api.Group("/interviews")
		interviews.POST("", interviewCtrl.CreateInterview)
		interviews.GET("", interviewCtrl.ListInterviews)
		interviews.GET("/:id", interviewCtrl.GetInterview)
		interviews.PUT("/:id/start", interviewCtrl.StartInterview)
		interviews.PUT("/:id/questions/:question_id/response", interviewCtrl.SubmitResponse)
		interviews.PUT("/:id/complete", interviewCtrl.CompleteInterview)

		users := api.Group("/users")
		users.POST("", userCtrl.RegisterUser)
		users.GET("/:id", userCtrl.GetUser)
		users.GET("/:id/stats", userCtrl.GetUserStats)
		users.GET("/:id/badges", userCtrl.GetUserBadges)

		api.GET("/leaderboard", leaderboardCtrl.GetLeaderboard)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("InsightIQ API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
		&model.Interview{},
		&model.Question{},
		&model.Badge{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
