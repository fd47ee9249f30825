package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campushub/backend/internal/app/controllers"
	appMigrations "github.com/campushub/backend/internal/app/migrations"
	appRepos "github.com/campushub/backend/internal/app/repositories"
	appRoutes "github.com/campushub/backend/internal/app/routes"
	appServices "github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/config"
	"github.com/campushub/backend/internal/db"
	appMiddleware "github.com/campushub/backend/internal/middleware"
	pkgAuth "github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/helpers"
	"github.com/campushub/backend/internal/pkg/logger"
	"github.com/campushub/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	UserService            appServices.UserService
	EventService           appServices.EventService
	EventContentService    appServices.EventContentService
	TeamService            appServices.TeamService
	EventAdminService      appServices.EventAdminService
	FeedService            appServices.FeedService
	StartupService         appServices.StartupService
	InternshipService      appServices.InternshipService
	NotificationService    appServices.NotificationService
	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	EventController        *appControllers.EventController
	TeamController         *appControllers.TeamController
	EventAdminController   *appControllers.EventAdminController
	FeedController         *appControllers.FeedController
	StartupController      *appControllers.StartupController
	InternshipController   *appControllers.InternshipController
	NotificationController *appControllers.NotificationController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, cfg, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	userCache := gocache.New(5*time.Minute, 10*time.Minute)
	reapplyWindow := helpers.ParseDuration(cfg.Startups.ReapplyWindow, 720*time.Hour)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, userCache, lgr)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, lgr)
	deps.EventContentService = appServices.NewEventContentService(
		deps.Repos.EventRepository,
		deps.Repos.EventContentRepository,
		lgr,
	)
	deps.TeamService = appServices.NewTeamService(
		deps.Repos.EventRepository,
		deps.Repos.TeamRepository,
		deps.Repos.JoinRequestRepository,
		deps.Repos.ParticipantRepository,
		deps.Repos.NotificationRepository,
		lgr,
	)
	deps.EventAdminService = appServices.NewEventAdminService(
		deps.Repos.EventRepository,
		deps.Repos.TeamRepository,
		deps.Repos.JoinRequestRepository,
		deps.Repos.ParticipantRepository,
		deps.Repos.NotificationRepository,
		lgr,
	)
	deps.FeedService = appServices.NewFeedService(deps.Repos.PostRepository, lgr)
	deps.StartupService = appServices.NewStartupService(
		deps.Repos.StartupRepository,
		deps.Repos.NotificationRepository,
		reapplyWindow,
		lgr,
	)
	deps.InternshipService = appServices.NewInternshipService(
		deps.Repos.InternshipRepository,
		deps.Repos.StartupRepository,
		deps.Repos.NotificationRepository,
		lgr,
	)
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.EventController = appControllers.NewEventController(deps.EventService, deps.EventContentService)
	deps.TeamController = appControllers.NewTeamController(deps.TeamService)
	deps.EventAdminController = appControllers.NewEventAdminController(deps.EventAdminService, deps.EventContentService)
	deps.FeedController = appControllers.NewFeedController(deps.FeedService)
	deps.StartupController = appControllers.NewStartupController(deps.StartupService)
	deps.InternshipController = appControllers.NewInternshipController(deps.InternshipService)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.EventController,
		deps.TeamController,
		deps.EventAdminController,
		deps.FeedController,
		deps.StartupController,
		deps.InternshipController,
		deps.NotificationController,
		deps.AuthMiddleware,
	)

	return router
}
