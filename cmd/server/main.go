package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"finroute.backend/internal/config"
	"finroute.backend/internal/infrastructure/ai"
	"finroute.backend/internal/infrastructure/repositories"
	"finroute.backend/internal/interfaces/http/handlers"
	"finroute.backend/internal/interfaces/http/middleware"
	"finroute.backend/internal/usecases"
	"finroute.backend/pkg/jwt"
	"finroute.backend/pkg/logger"
	"finroute.backend/pkg/redis"
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
			PrepareStmt: false,
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

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
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

	sessionService := jwt.NewSessionService(cfg.Session.Secret, cfg.Session.Expiry)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	planRepo := repositories.NewPlanRepository(db)
	reminderRepo := repositories.NewReminderRepository(db)
	achievementRepo := repositories.NewAchievementRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// The AI client is only built when a credential is present; plan
	// generation fails closed otherwise
	var generator usecases.PlanGenerator
	if cfg.AI.Configured() {
		generator = ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout)
		log.Println("✅ Plan generation enabled")
	} else {
		log.Println("⚠️ AI credential missing: plan generation disabled")
	}

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, profileRepo, sessionService)
	profileUsecase := usecases.NewProfileUsecase(profileRepo, userRepo)
	planUsecase := usecases.NewPlanUsecase(planRepo, achievementRepo, profileRepo, uow, generator, cfg.AI.Configured())
	dashboardUsecase := usecases.NewDashboardUsecase(planRepo, reminderRepo, achievementRepo)
	reminderUsecase := usecases.NewReminderUsecase(reminderRepo)

	// Handlers
	cookie := handlers.SessionCookie{
		Name:   cfg.Session.CookieName,
		MaxAge: int(cfg.Session.Expiry.Seconds()),
		Secure: cfg.Server.Env == "production",
	}
	authHandler := handlers.NewAuthHandler(authUsecase, cookie)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	planHandler := handlers.NewPlanHandler(planUsecase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUsecase)
	reminderHandler := handlers.NewReminderHandler(reminderUsecase)

	sessionMiddleware := middleware.SessionMiddleware(sessionService, cfg.Session.CookieName)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", middleware.MetricsHandler())
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		profileHandler:    profileHandler,
		planHandler:       planHandler,
		dashboardHandler:  dashboardHandler,
		reminderHandler:   reminderHandler,
		sessionMiddleware: sessionMiddleware,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			log.Println("🛑 Shutting down server...")
			_ = logger.Sync()
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Printf("🚀 FinRoute Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
