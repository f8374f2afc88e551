package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"complainthub.backend/internal/config"
	"complainthub.backend/internal/domain/push"
	"complainthub.backend/internal/infrastructure/mail"
	infrapush "complainthub.backend/internal/infrastructure/push"
	"complainthub.backend/internal/infrastructure/repositories"
	"complainthub.backend/internal/infrastructure/storage"
	"complainthub.backend/internal/interfaces/http/handlers"
	"complainthub.backend/internal/interfaces/http/middleware"
	"complainthub.backend/internal/usecases"
	"complainthub.backend/pkg/jwt"
	"complainthub.backend/pkg/logger"
	"complainthub.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt:    false,
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	otpRepo := repositories.NewOtpRepository(db)
	complaintRepo := repositories.NewComplaintRepository(db)
	feedRepo := repositories.NewFeedRepository(db)
	reactionRepo := repositories.NewReactionRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	followerRepo := repositories.NewFollowerRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Infrastructure services
	store := storage.NewLocalStore(cfg.Upload.Root)
	mailer := mail.NewLogMailer()

	var sender push.Sender = infrapush.NopSender{}
	if cfg.Push.Enabled {
		sender = infrapush.NewExpoSender(cfg.Push.Endpoint)
	}

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, otpRepo, mailer, jwtService, cfg.Otp.TTL, cfg.Otp.ResendCooldown)
	profileUsecase := usecases.NewProfileUsecase(userRepo, store)
	complaintUsecase := usecases.NewComplaintUsecase(complaintRepo, uow, store, cfg.Upload.MaxComplaintFiles)
	feedUsecase := usecases.NewFeedUsecase(feedRepo)
	socialUsecase := usecases.NewSocialUsecase(reactionRepo, commentRepo, followerRepo, complaintRepo, userRepo, sender)
	searchUsecase := usecases.NewSearchUsecase(userRepo)
	notificationUsecase := usecases.NewNotificationUsecase(feedRepo, followerRepo, userRepo, sender)

	// HTTP layer
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	registerRoutes(r, routeDeps{
		authHandler:         handlers.NewAuthHandler(authUsecase),
		profileHandler:      handlers.NewProfileHandler(profileUsecase),
		complaintHandler:    handlers.NewComplaintHandler(complaintUsecase, feedUsecase),
		socialHandler:       handlers.NewSocialHandler(socialUsecase),
		searchHandler:       handlers.NewSearchHandler(searchUsecase),
		notificationHandler: handlers.NewNotificationHandler(notificationUsecase),
		authMiddleware:      middleware.AuthMiddleware(jwtService),
		uploadRoot:          cfg.Upload.Root,
	})

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))
	return runServer(r, cfg.Server.Port)
}
