package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-quiz-api/internal/config"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	"github.com/yourusername/trivia-quiz-api/internal/handler"
	"github.com/yourusername/trivia-quiz-api/internal/middleware"
	pgRepo "github.com/yourusername/trivia-quiz-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-quiz-api/internal/repository/redis"
	"github.com/yourusername/trivia-quiz-api/internal/service"
	"github.com/yourusername/trivia-quiz-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	isProduction := gin.Mode() == gin.ReleaseMode
	logLevel := logger.Info
	if isProduction {
		logLevel = logger.Warn
	}

	// Подключение к БД (PostgreSQL или SQLite)
	db, err := database.Open(cfg.Database, logLevel)
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.Migrate(db, cfg.Database.MigrationsPath); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis необязателен: без него нет кеша категорий и rate limiting
	var redisClient redis.UniversalClient
	var cacheRepo repository.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err = database.NewUniversalRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		log.Println("Successfully connected to Redis")

		redisCache, err := redisRepo.NewCacheRepo(redisClient)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
		cacheRepo = redisCache
	} else {
		log.Println("Redis отключен: кеш категорий и rate limiting неактивны")
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Инициализируем сервисы
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo, cfg.Redis.CategoryTTL)
	questionService := service.NewQuestionService(questionRepo, categoryService)
	quizService := service.NewQuizService(questionRepo)

	// Проверяемые в /healthz зависимости
	dependencies := map[string]handler.Pinger{
		"database": handler.PingFunc(func(ctx context.Context) error { return database.Ping(ctx, db) }),
	}
	if cacheRepo != nil {
		dependencies["redis"] = cacheRepo
	}

	deps := handler.RouterDeps{
		Questions:  handler.NewQuestionHandler(questionService),
		Categories: handler.NewCategoryHandler(categoryService, questionService),
		Quizzes:    handler.NewQuizHandler(quizService),
		Export:     handler.NewExportHandler(questionService),
		Index:      handler.NewIndexHandler(dependencies),
		CORS:       cfg.CORS,
	}

	if cfg.RateLimit.Enabled && cacheRepo != nil {
		deps.RateLimiter = middleware.NewRateLimiter(cacheRepo)
		deps.RateLimit = middleware.RateLimitConfig{
			MaxRequests: cfg.RateLimit.MaxRequests,
			Window:      cfg.RateLimit.Window,
			KeyPrefix:   "trivia:ratelimit",
		}
	}

	// В production не доверяем прокси-заголовкам, в разработке доверяем localhost
	if !isProduction {
		deps.TrustedProxies = []string{"127.0.0.1", "::1"}
	}

	router := handler.NewRouter(deps)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if err := database.Close(db); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server exited properly")
}
