// Package bootstrap wires configuration, database, dependencies and routes.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/devraj/lecturehall/internal/app/controllers"
	appMigrations "github.com/devraj/lecturehall/internal/app/migrations"
	appRepos "github.com/devraj/lecturehall/internal/app/repositories"
	appRoutes "github.com/devraj/lecturehall/internal/app/routes"
	appServices "github.com/devraj/lecturehall/internal/app/services"
	"github.com/devraj/lecturehall/internal/config"
	"github.com/devraj/lecturehall/internal/db"
	appMiddleware "github.com/devraj/lecturehall/internal/middleware"
	pkgAuth "github.com/devraj/lecturehall/internal/pkg/auth"
	"github.com/devraj/lecturehall/internal/pkg/helpers"
	"github.com/devraj/lecturehall/internal/pkg/logger"
	"github.com/devraj/lecturehall/internal/pkg/validation"
	"github.com/devraj/lecturehall/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	CourseService        appServices.CourseService
	LectureService       appServices.LectureService
	InstructorService    appServices.InstructorService
	AuthController       *appControllers.AuthController
	CourseController     *appControllers.CourseController
	LectureController    *appControllers.LectureController
	InstructorController *appControllers.InstructorController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default accounts.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed default accounts after migrations. A seeding failure is logged
	// but must not keep the server from listening.
	userRepo := appRepos.NewUserRepository(dbPool)
	if err := seed.EnsureDefaultAccounts(context.Background(), userRepo, seed.DefaultAccounts(), lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default accounts, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.UserRepository)
	deps.LectureService = appServices.NewLectureService(deps.Repos.LectureRepository, deps.Repos.CourseRepository, deps.Repos.UserRepository)
	deps.InstructorService = appServices.NewInstructorService(deps.Repos.UserRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, lgr)
	deps.LectureController = appControllers.NewLectureController(deps.LectureService, lgr)
	deps.InstructorController = appControllers.NewInstructorController(deps.InstructorService, lgr)

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

	if err := validation.RegisterCustomValidators(); err != nil {
		lgr.Warn().Err(err).Msg("Failed to register custom validators")
	}

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.LectureController,
		deps.InstructorController,
		deps.AuthMiddleware,
	)

	return router
}
