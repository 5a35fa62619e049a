package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-quiz-api/internal/config"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	pgRepo "github.com/yourusername/trivia-quiz-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-quiz-api/internal/repository/redis"
	"github.com/yourusername/trivia-quiz-api/internal/service"
	"github.com/yourusername/trivia-quiz-api/pkg/database"
)

func main() {
	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = "config/config.yaml"
	}

	configPath := flag.String("config", defaultConfig, "путь к файлу конфигурации")
	up := flag.Bool("up", true, "применить все миграции")
	force := flag.Int("force", -1, "принудительно выставить версию миграции (очистка dirty state)")
	seed := flag.Bool("seed", false, "заполнить пустую таблицу категорий значениями по умолчанию")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Database.Driver == config.DriverPostgres {
		if err := runPostgresMigrations(cfg.Database, *force, *up); err != nil {
			log.Fatal(err)
		}
	} else if *force >= 0 {
		log.Fatalf("-force поддерживается только для драйвера %s", config.DriverPostgres)
	}

	if !*seed && cfg.Database.Driver == config.DriverPostgres {
		return
	}

	db, err := database.Open(cfg.Database, logger.Warn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Для SQLite схема создается средствами GORM
	if cfg.Database.Driver == config.DriverSQLite && *up {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatal(err)
		}
		log.Println("Схема SQLite актуальна.")
	}

	if !*seed {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Кеш категорий нужно сбросить, иначе API до истечения TTL будет отдавать старый список
	var cacheRepo repository.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err := database.NewUniversalRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Printf("Redis недоступен, кеш категорий не будет сброшен: %v", err)
		} else {
			defer redisClient.Close()
			if cacheRepo, err = redisRepo.NewCacheRepo(redisClient); err != nil {
				log.Fatalf("Failed to initialize CacheRepo: %v", err)
			}
		}
	}

	categoryService := service.NewCategoryService(pgRepo.NewCategoryRepo(db), cacheRepo, cfg.Redis.CategoryTTL)
	created, err := categoryService.SeedCategories(ctx, service.DefaultCategories)
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}
	log.Printf("Создано категорий: %d", created)
}

// runPostgresMigrations применяет миграции через database/sql (lib/pq) и golang-migrate
func runPostgresMigrations(cfg config.DatabaseConfig, force int, up bool) error {
	db, err := sql.Open("postgres", cfg.PostgresConnectionString())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return err
	}

	m, err := database.NewMigrator(db, cfg.MigrationsPath)
	if err != nil {
		return err
	}

	if force >= 0 {
		log.Printf("Принудительно выставляем версию миграции %d для очистки dirty state...", force)
		if err := m.Force(force); err != nil {
			return err
		}
		log.Println("Dirty state очищен.")
	}

	if !up {
		return nil
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("Изменений в миграциях не найдено, база данных уже актуальна.")
			return nil
		}
		return err
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	log.Printf("Миграции применены, версия %d (dirty=%t)", version, dirty)
	return nil
}
