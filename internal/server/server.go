package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scraty/internal/config"
	"scraty/internal/database"
	"scraty/internal/handler"
	"scraty/internal/repository"
	"scraty/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Bring the schema up to date before opening the ORM connection
	migrateURL := fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)
	if err := database.Migrate(migrateURL); err != nil {
		return nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
	}

	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	// Setup Gin
	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	// Initialize repositories
	storyRepo := repository.NewStoryRepository(db)
	cardRepo := repository.NewCardRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	storyService := service.NewStoryService(storyRepo)
	cardService := service.NewCardService(cardRepo, storyRepo, userRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(storyService)
	storyHandler := handler.NewStoryHandler(storyService)
	cardHandler := handler.NewCardHandler(cardService)
	userHandler := handler.NewUserHandler(userService)

	// Board
	r.GET("/", boardHandler.Index)
	r.GET("/healthz", boardHandler.Health)

	// Story routes; GET /stories doubles as the board fetch the page polls
	r.GET("/stories", boardHandler.Board)
	r.POST("/stories", storyHandler.Save)
	r.PUT("/stories/:id", storyHandler.Update)
	r.DELETE("/stories/:id", storyHandler.Delete)

	// Card routes
	r.POST("/cards", cardHandler.Save)
	r.PUT("/cards/:id", cardHandler.Update)
	r.DELETE("/cards/:id", cardHandler.Delete)
	r.POST("/cards/:id/move", cardHandler.Move)

	// User roster routes
	r.GET("/users", userHandler.Page)
	r.POST("/users", userHandler.BulkSave)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
