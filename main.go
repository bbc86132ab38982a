package main

import (
	"context"
	"net/http"
	"time"

	"glossary-cms/config"
	"glossary-cms/handlers"
	"glossary-cms/logger"
	"glossary-cms/metrics"
	"glossary-cms/middleware"
	"glossary-cms/repositories"
	"glossary-cms/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	config.Load()

	log, err := logger.New(config.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := config.InitDB()
	cache := initRedis(log)
	m := metrics.New()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	termRepo := repositories.NewTermRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	labelRepo := repositories.NewLabelRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	queryRepo := repositories.NewVersionQueryRepository(db, config.RequiredLanguages)

	// Services
	authService := services.NewAuthService(userRepo)
	termService := services.NewTermService(db, queryRepo, config.RequiredLanguages, log)
	glossaryService := services.NewGlossaryService(queryRepo, termRepo, commentRepo, cache, log)
	categoryService := services.NewCategoryService(categoryRepo)
	labelService := services.NewLabelService(labelRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	termHandler := handlers.NewTermHandler(termService)
	glossaryHandler := handlers.NewGlossaryHandler(glossaryService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	labelHandler := handlers.NewLabelHandler(labelService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinMiddleware(log))
	router.Use(m.GinMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public glossary: published terms only.
		public := v1.Group("/public")
		{
			public.GET("/terms", glossaryHandler.ListTerms)
			public.GET("/terms/:identifier", glossaryHandler.GetTerm)
			public.GET("/terms/:identifier/comments", glossaryHandler.ListComments)
			public.GET("/categories", categoryHandler.GetCategories)
			public.GET("/labels", labelHandler.GetLabels)
		}

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.POST("/terms/:identifier/comments", middleware.SanitizeInputMiddleware(), glossaryHandler.AddComment)

			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			admin.Use(middleware.SanitizeInputMiddleware())
			{
				admin.POST("/terms", termHandler.CreateDraft)
				admin.POST("/terms/:id/versions", termHandler.CreateVersion)
				admin.GET("/history/:identifier", termHandler.GetHistory)

				admin.GET("/versions", termHandler.ListVersions)
				admin.GET("/versions/:id", termHandler.GetVersion)
				admin.PUT("/versions/:id", termHandler.UpdateDraft)
				admin.DELETE("/versions/:id", termHandler.DeleteVersion)
				admin.POST("/versions/:id/approve", termHandler.ApproveDraft)
				admin.POST("/versions/:id/reject", termHandler.RejectDraft)
				admin.POST("/versions/:id/restore", termHandler.RestoreVersion)

				admin.POST("/categories", categoryHandler.CreateCategory)
				admin.GET("/categories/:id", categoryHandler.GetCategory)
				admin.POST("/labels", labelHandler.CreateLabel)
				admin.GET("/labels/:id", labelHandler.GetLabel)
			}
		}
	}

	log.Info("server starting", zap.String("port", config.Port))
	if err := router.Run(":" + config.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// initRedis connects the optional published-term cache. The service runs
// fine without it, so a missing or unreachable Redis only logs a warning.
func initRedis(log *zap.Logger) *redis.Client {
	if config.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, term cache disabled", zap.Error(err))
		_ = client.Close()
		return nil
	}

	return client
}
