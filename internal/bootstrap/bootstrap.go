package bootstrap

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/arivera/clubchat/internal/app/controllers"
	appGateway "github.com/arivera/clubchat/internal/app/gateway"
	appRoutes "github.com/arivera/clubchat/internal/app/routes"
	appServices "github.com/arivera/clubchat/internal/app/services"
	"github.com/arivera/clubchat/internal/config"
	appMiddleware "github.com/arivera/clubchat/internal/middleware"
	pkgAuth "github.com/arivera/clubchat/internal/pkg/auth"
	"github.com/arivera/clubchat/internal/pkg/logger"
	"github.com/arivera/clubchat/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Gateway           appGateway.Gateway
	AuthService       appServices.AuthService
	ClubService       appServices.ClubService
	TimelineService   appServices.TimelineService
	DispatcherService appServices.DispatcherService
	PollService       appServices.PollService
	EventService      appServices.EventService
	FormService       appServices.FormService
	UserService       appServices.UserService
	AuthController    *appControllers.AuthController
	ClubController    *appControllers.ClubController
	ChatController    *appControllers.ChatController
	PollController    *appControllers.PollController
	EventController   *appControllers.EventController
	FormController    *appControllers.FormController
	UserController    *appControllers.UserController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A missing .env file is fine; the config loader falls back to
	// defaults and real environment variables.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "console"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupGateway builds the in-memory backend gateway, optionally loading
// the demo fixture set.
func SetupGateway(cfg *config.Config, lgr zerolog.Logger) (*appGateway.Memory, error) {
	gw := appGateway.NewMemory(lgr)

	if cfg.Gateway.SeedDemoData {
		if err := seed.Load(gw, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to load demo fixtures")
			return nil, err
		}
	}

	return gw, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, gw appGateway.Gateway, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Gateway: gw, Logger: lgr}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  parseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: parseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(gw, deps.JWTService, lgr)
	deps.ClubService = appServices.NewClubService(gw, lgr)
	deps.TimelineService = appServices.NewTimelineService(gw, lgr)
	deps.DispatcherService = appServices.NewDispatcherService(gw, lgr)
	deps.PollService = appServices.NewPollService(gw, lgr)
	deps.EventService = appServices.NewEventService(gw, lgr)
	deps.FormService = appServices.NewFormService(gw, lgr)
	deps.UserService = appServices.NewUserService(gw, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ClubController = appControllers.NewClubController(deps.ClubService)
	deps.ChatController = appControllers.NewChatController(deps.TimelineService, deps.DispatcherService)
	deps.PollController = appControllers.NewPollController(deps.DispatcherService, deps.PollService)
	deps.EventController = appControllers.NewEventController(deps.EventService, deps.DispatcherService)
	deps.FormController = appControllers.NewFormController(deps.FormService, deps.DispatcherService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

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
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ClubController,
		deps.ChatController,
		deps.PollController,
		deps.EventController,
		deps.FormController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	return router
}

// parseDuration parses value, falling back to def when it is empty or
// malformed.
func parseDuration(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return d
}
