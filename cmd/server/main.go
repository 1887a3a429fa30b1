package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/campushire/jobboard/internal/auditlog"
	"github.com/campushire/jobboard/internal/config"
	"github.com/campushire/jobboard/internal/database"
	"github.com/campushire/jobboard/internal/handler"
	"github.com/campushire/jobboard/internal/middleware"
	"github.com/campushire/jobboard/internal/policy"
	"github.com/campushire/jobboard/internal/repository"
	"github.com/campushire/jobboard/internal/revocation"
	"github.com/campushire/jobboard/internal/service"
	"github.com/campushire/jobboard/pkg/logger"
)

func main() {
	cfg := config.Load()
	log.Println("Config loaded successfully")

	if err := logger.Init(cfg.Environment != "production"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	// Audit journal for the deletion workflow
	journal, err := auditlog.NewJournal(cfg.AuditJournalPath)
	if err != nil {
		log.Fatalf("Failed to initialize audit journal: %v", err)
	}
	defer journal.Close()

	// Redis: credential revocation + rate limiting
	revoker, err := revocation.NewRedisStore(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to initialize revocation store: %v", err)
	}
	defer revoker.Close()

	redisOpt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Invalid REDIS_URL: %v", err)
	}
	rateLimiter := middleware.NewRateLimiter(redis.NewClient(redisOpt), middleware.RateLimiterConfig{
		MaxRequests: cfg.RateLimitMaxRequests,
		Window:      cfg.RateLimitWindow,
		BlockTime:   cfg.RateLimitBlockTime,
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	postingRepo := repository.NewPostingRepository(database.DB)
	applicationRepo := repository.NewApplicationRepository(database.DB)
	savedJobRepo := repository.NewSavedJobRepository(database.DB)
	settingRepo := repository.NewSettingRepository(database.DB)
	auditRepo := repository.NewAuditRepository(database.DB)

	// Initialize services
	settingsService := service.NewSettingsService(settingRepo)
	engine := policy.NewEngine(settingsService)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.Environment)
	postingService := service.NewPostingService(postingRepo, engine)
	applicationService := service.NewApplicationService(applicationRepo, postingRepo)
	savedJobService := service.NewSavedJobService(savedJobRepo, postingRepo)
	accountService := service.NewAccountService(
		userRepo, postingRepo, applicationRepo, savedJobRepo,
		auditRepo, journal, revoker, cfg.JWTExpiry,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	postingHandler := handler.NewPostingHandler(postingService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	savedJobHandler := handler.NewSavedJobHandler(savedJobService)
	adminHandler := handler.NewAdminHandler(authService, postingService, settingsService, accountService)

	// Setup Gin router
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(authService.IsProduction()))
	router.Use(rateLimiter.Middleware())

	// Public routes
	router.POST("/api/auth/register", authHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)

	// Read paths: auth optional, visibility handled by the policy filter
	public := router.Group("/api")
	public.Use(middleware.OptionalAuthMiddleware(cfg.JWTSecret, userRepo, revoker))
	{
		public.GET("/postings", postingHandler.List)
		public.GET("/postings/:id", postingHandler.Get)
	}

	// Protected routes (require JWT)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret, userRepo, revoker))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.DELETE("/account", accountHandler.DeleteMe)

		protected.POST("/postings", postingHandler.Create)
		protected.PUT("/postings/:id", postingHandler.Update)
		protected.DELETE("/postings/:id", postingHandler.Delete)
		protected.POST("/postings/:id/resubmit", postingHandler.Resubmit)
		protected.POST("/postings/:id/reactivate", postingHandler.Reactivate)
		protected.GET("/postings/mine", postingHandler.Mine)

		protected.POST("/postings/:id/apply", applicationHandler.Apply)
		protected.GET("/postings/:id/applications", applicationHandler.ForPosting)
		protected.GET("/applications/mine", applicationHandler.Mine)
		protected.PUT("/applications/:id", applicationHandler.UpdateStatus)

		protected.POST("/postings/:id/save", savedJobHandler.Save)
		protected.DELETE("/postings/:id/save", savedJobHandler.Unsave)
		protected.GET("/saved", savedJobHandler.Mine)
	}

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret, userRepo, revoker))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/users", adminHandler.GetAllUsers)
		admin.POST("/users/:id/approve", adminHandler.ApproveAccount)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)

		admin.GET("/postings/pending", adminHandler.PendingPostings)
		admin.POST("/postings/:id/approve", adminHandler.ApprovePosting)
		admin.POST("/postings/:id/reject", adminHandler.RejectPosting)
		admin.POST("/postings/:id/remove", adminHandler.RemovePosting)

		admin.GET("/settings", adminHandler.GetSettings)
		admin.PUT("/settings", adminHandler.SetSetting)
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
