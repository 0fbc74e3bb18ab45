package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/cohort-tools/api/internal/app/controllers"
	appMigrations "github.com/cohort-tools/api/internal/app/migrations"
	appRepos "github.com/cohort-tools/api/internal/app/repositories"
	memoryRepos "github.com/cohort-tools/api/internal/app/repositories/memory"
	mongoRepos "github.com/cohort-tools/api/internal/app/repositories/mongodb"
	postgresRepos "github.com/cohort-tools/api/internal/app/repositories/postgres"
	appRoutes "github.com/cohort-tools/api/internal/app/routes"
	appServices "github.com/cohort-tools/api/internal/app/services"
	"github.com/cohort-tools/api/internal/config"
	"github.com/cohort-tools/api/internal/db"
	appMiddleware "github.com/cohort-tools/api/internal/middleware"
	pkgAuth "github.com/cohort-tools/api/internal/pkg/auth"
	"github.com/cohort-tools/api/internal/pkg/helpers"
	"github.com/cohort-tools/api/internal/pkg/logger"
	"github.com/cohort-tools/api/internal/pkg/validation"
	"github.com/cohort-tools/api/internal/seed"
)

// Store is the selected storage backend and the connections behind it
type Store struct {
	Repos    *appRepos.Repositories
	Mongo    *db.MongoDB
	Postgres *db.PostgresDB
	Redis    *redis.Client
}

// Close releases every open connection
func (s *Store) Close(ctx context.Context) error {
	var firstErr error
	if s.Mongo != nil {
		if err := s.Mongo.Close(ctx); err != nil {
			firstErr = err
		}
	}
	if s.Postgres != nil {
		s.Postgres.Close()
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services          *appServices.Services
	CohortController  *appControllers.CohortController
	StudentController *appControllers.StudentController
	AuthController    *appControllers.AuthController
	UserController    *appControllers.UserController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured backend and prepares its schema.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	store := &Store{}
	driver := strings.ToLower(cfg.Database.Driver)
	lgr.Info().Str("driver", driver).Msg("Establishing database connection...")

	switch driver {
	case config.DriverMongo:
		mongoDB, err := db.NewMongoDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
			return nil, err
		}
		store.Mongo = mongoDB

		ctx, cancel := context.WithTimeout(context.Background(), helpers.ParseDuration(cfg.Database.ConnectTimeout, 10*time.Second))
		defer cancel()
		if err := mongoRepos.EnsureIndexes(ctx, mongoDB.Database); err != nil {
			_ = store.Close(context.Background())
			return nil, fmt.Errorf("failed to create mongodb indexes: %w", err)
		}
		store.Repos = mongoRepos.NewRepositories(mongoDB.Database)

	case config.DriverPostgres:
		pg, err := db.NewPostgresDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		store.Postgres = pg

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pg.Pool.Ping(ctx); err != nil {
			lgr.Error().Err(err).Msg("Failed to ping database")
			pg.Close()
			return nil, err
		}

		lgr.Info().Msg("Running database migrations...")
		migrationsDir := cfg.Database.MigrationsDir
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			pg.Close()
			return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
		}
		if err := appMigrations.NewMigrator(pg.Pool).MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
			pg.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")
		store.Repos = postgresRepos.NewRepositories(pg.Pool)

	case config.DriverMemory:
		store.Repos = memoryRepos.NewRepositories()

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	lgr.Info().Str("driver", driver).Msg("Database connection successfully established.")
	return store, nil
}

// SetupRevocation picks the Redis revocation list when Redis is configured,
// otherwise an in-process one.
func SetupRevocation(cfg *config.Config, store *Store, lgr zerolog.Logger) (pkgAuth.RevocationList, error) {
	client, err := db.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}
	if client == nil {
		lgr.Warn().Msg("Redis not configured, revoked tokens are kept in memory")
		return pkgAuth.NewMemoryRevocationList(), nil
	}
	store.Redis = client
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Using Redis revocation list")
	return pkgAuth.NewRedisRevocationList(client), nil
}

// BuildDependencies initializes services and controllers over a store.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, revocation pkgAuth.RevocationList, lgr zerolog.Logger) (*Dependencies, error) {
	if err := validation.RegisterBindingValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	deps := &Dependencies{Logger: lgr, Repos: repos}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.Expiration, pkgAuth.DefaultTokenTTL),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(repos, appServices.Dependencies{
		Hasher:     pkgAuth.NewBcryptHasher(cfg.JWT.BcryptCost),
		Tokens:     deps.JWTService,
		Revocation: revocation,
	}, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Services.Auth)

	deps.CohortController = appControllers.NewCohortController(deps.Services.Cohorts, deps.Services.Roster, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.Services.Students, deps.Services.Roster, lgr)
	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth, lgr)
	deps.UserController = appControllers.NewUserController(deps.Services.Auth)

	return deps, nil
}

// SeedData loads the sample data when seeding is enabled.
func SeedData(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) {
	if !cfg.Seed.Enabled {
		return
	}
	err := seed.CreateDefaultData(context.Background(), deps.Repos, deps.Services, seed.Files{
		Cohorts:  cfg.Seed.CohortsFile,
		Students: cfg.Seed.StudentsFile,
	}, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	router := gin.New()
	router.Use(appMiddleware.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	if len(cfg.Server.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.Use(appMiddleware.ErrorHandler())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.CohortController,
		deps.StudentController,
		deps.AuthController,
		deps.UserController,
		deps.AuthMiddleware,
		appRoutes.Options{
			ProtectAPI: cfg.Server.ProtectAPI,
			DocsPage:   cfg.Server.DocsPage,
		},
	)

	return router
}
