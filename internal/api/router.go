package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/applyflow/outreach-system/internal/api/handler"
	"github.com/applyflow/outreach-system/internal/api/middleware"
	"github.com/applyflow/outreach-system/internal/core/ports"
	"github.com/applyflow/outreach-system/internal/core/service"
	"github.com/applyflow/outreach-system/internal/infrastructure/config"
	mongodb "github.com/applyflow/outreach-system/internal/infrastructure/db/mongo"
	redisdb "github.com/applyflow/outreach-system/internal/infrastructure/db/redis"
	"github.com/applyflow/outreach-system/internal/mail"
	"github.com/applyflow/outreach-system/internal/secret"
)

// Dependencies carries the externally constructed resources the router
// wires into handlers. Redis may be nil; the pre-flight cache is then
// disabled and every bulk send pays the full SMTP handshake.
type Dependencies struct {
	Config *config.Config
	Logger zerolog.Logger
	DB     *mongo.Database
	Redis  *goredis.Client
	Files  ports.FileStore
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	cfg := deps.Config

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("outreach"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	operationRepo := mongodb.NewOperationRepository(deps.DB)

	var preflight service.PreflightCache
	if deps.Redis != nil {
		preflight = redisdb.NewPreflightCache(deps.Redis, cfg.SMTP.PreflightTTL)
	}

	mailer := mail.NewSMTPSender(mail.SMTPConfig{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		DialTimeout: cfg.SMTP.DialTimeout,
	})

	box := secret.NewBox(cfg.EncryptionKey)
	authService := service.NewAuthService(userRepo, box, cfg.JWTSecret, cfg.TokenTTL)
	outreachService := service.NewOutreachService(
		userRepo,
		operationRepo,
		authService,
		mailer,
		deps.Files,
		preflight,
		cfg.SMTP.Workers,
		deps.Logger,
	)
	operationService := service.NewOperationService(operationRepo, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	outreachHandler := handler.NewOutreachHandler(outreachService)
	operationHandler := handler.NewOperationHandler(operationService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- User routes ---
	e.POST("/api/users/", authHandler.Register)
	e.POST("/api/users/login", authHandler.Login)

	// --- Bearer-protected routes ---
	emailGroup := e.Group("/api/email", authMiddleware)
	emailGroup.POST("/send-internship", outreachHandler.SendInternship)

	operationsGroup := e.Group("/api/operations", authMiddleware)
	operationsGroup.GET("/", operationHandler.List)
	operationsGroup.GET("/:operation_id", operationHandler.Get)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
