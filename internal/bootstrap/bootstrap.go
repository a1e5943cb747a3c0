package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/seda/schoolpulse/internal/app/controllers"
	appRoutes "github.com/seda/schoolpulse/internal/app/routes"
	appServices "github.com/seda/schoolpulse/internal/app/services"
	"github.com/seda/schoolpulse/internal/config"
	appMiddleware "github.com/seda/schoolpulse/internal/middleware"
	pkgAuth "github.com/seda/schoolpulse/internal/pkg/auth"
	"github.com/seda/schoolpulse/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	DatasetService      *appServices.DatasetService
	AuthService         *appServices.AuthService
	AuthController      *appControllers.AuthController
	DatasetController   *appControllers.DatasetController
	AggregateController *appControllers.AggregateController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	JWTService          *pkgAuth.JWTService
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

// BuildDependencies initializes the generator, services and controllers.
// The whole dataset is generated here, before the server starts
// listening, so the first request already sees a complete dataset.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	var err error
	deps.DatasetService, err = appServices.NewDatasetService(
		uint32(cfg.Generator.Seed),
		cfg.Generator.SuppressionThreshold,
	)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to generate initial dataset")
		return nil, err
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.JWTService,
		cfg.Reviewer.Username,
		cfg.Reviewer.PasswordHash,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.DatasetController = appControllers.NewDatasetController(deps.DatasetService)
	deps.AggregateController = appControllers.NewAggregateController(deps.DatasetService)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.DatasetController,
		deps.AggregateController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
