package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"blog-api/internal/config"
	"blog-api/internal/database"
	"blog-api/internal/handler"
	"blog-api/internal/middleware"
	"blog-api/internal/repository"
	"blog-api/internal/service"
	"blog-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, commentRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)

	// 6. Setup Gin mode and custom request validators
	gin.SetMode(cfg.Server.GinMode)
	handler.RegisterCustomValidators()

	// 7. Setup Gin router
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Panic recovered: %v", recovered)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
	}))

	// Apply CORS and the authentication gate to every route. The gate resolves
	// an identity or leaves the request anonymous; per-route policies decide
	// whether anonymous is acceptable.
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Authenticate(userRepo))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)

	// 9. Define routes
	// API welcome document
	r.GET("/", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "Welcome to the Blog API!", gin.H{
			"version": "1.0",
			"endpoints": gin.H{
				"posts": "/posts",
				"users": "/users",
			},
		})
	})

	// User and session routes
	users := r.Group("/users")
	{
		users.POST("/signup", authHandler.Signup)
		users.POST("/login", authHandler.Login)
		users.POST("/token", authHandler.Token)
		users.POST("/logout", authHandler.Logout)

		users.GET("", middleware.RequireLogin(), middleware.RequireAuthor(), userHandler.List)
		users.GET("/:userId", middleware.RequireLogin(), middleware.RequireAuthor(), userHandler.Get)
		users.PUT("/:userId", middleware.RequireLogin(), middleware.RequireReferencedUser(), userHandler.Update)
		users.DELETE("/:userId", middleware.RequireLogin(), middleware.RequireReferencedUserOrAuthor(), userHandler.Delete)
	}

	// Post and comment routes
	posts := r.Group("/posts")
	{
		posts.GET("", postHandler.List)
		posts.POST("", middleware.RequireLogin(), middleware.RequireAuthor(), postHandler.Create)
		posts.GET("/:postId", postHandler.Get)
		posts.PUT("/:postId", middleware.RequireLogin(), middleware.RequireAuthor(), postHandler.Update)
		posts.DELETE("/:postId", middleware.RequireLogin(), middleware.RequireAuthor(), postHandler.Delete)

		posts.GET("/:postId/comments", commentHandler.List)
		posts.POST("/:postId/comments", middleware.RequireLogin(), commentHandler.Create)
		posts.GET("/:postId/comments/:commentId", commentHandler.Get)
		posts.PUT("/:postId/comments/:commentId", middleware.RequireLogin(), commentHandler.Update)
		posts.DELETE("/:postId/comments/:commentId", middleware.RequireLogin(), commentHandler.Delete)
	}

	// JSON 404 for unknown routes
	r.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, "Not Found")
	})

	// 10. Start server with graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
