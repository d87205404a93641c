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

	appControllers "github.com/shariarmdimtiaz/college-booking-server/internal/app/controllers"
	appMigrations "github.com/shariarmdimtiaz/college-booking-server/internal/app/migrations"
	appRepos "github.com/shariarmdimtiaz/college-booking-server/internal/app/repositories"
	appRoutes "github.com/shariarmdimtiaz/college-booking-server/internal/app/routes"
	appServices "github.com/shariarmdimtiaz/college-booking-server/internal/app/services"
	"github.com/shariarmdimtiaz/college-booking-server/internal/config"
	"github.com/shariarmdimtiaz/college-booking-server/internal/db"
	appMiddleware "github.com/shariarmdimtiaz/college-booking-server/internal/middleware"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/auth"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/logger"
	"github.com/shariarmdimtiaz/college-booking-server/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService         appServices.UserService
	CollegeService      appServices.CollegeService
	AdmissionService    appServices.AdmissionService
	AuthController      *appControllers.AuthController
	UserController      *appControllers.UserController
	CollegeController   *appControllers.CollegeController
	AdmissionController *appControllers.AdmissionController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	TokenService        *auth.TokenService
	Logger              zerolog.Logger
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
// seeds the default college catalog.
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

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// A seeding failure is not fatal; the catalog can be filled over
		// the API instead.
		lgr.Error().Err(err).Msg("Failed to seed default catalog, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.TokenService = auth.NewTokenService(auth.TokenConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.CollegeService = appServices.NewCollegeService(
		deps.Repos.CollegeRepository,
		deps.Repos.SubjectRepository,
		deps.Repos.ResearchRepository,
	)
	deps.AdmissionService = appServices.NewAdmissionService(deps.Repos.AdmissionRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.TokenService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.TokenService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService)
	deps.AdmissionController = appControllers.NewAdmissionController(deps.AdmissionService)

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

	router := gin.Default()
	router.Use(appMiddleware.CORS())

	table := appRoutes.Table(
		deps.AuthController,
		deps.UserController,
		deps.CollegeController,
		deps.AdmissionController,
	)
	appRoutes.SetupRouter(router, table, deps.AuthMiddleware)

	return router
}
