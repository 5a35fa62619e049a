package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// categoriesCacheKey: ключ кеша со списком всех категорий
const categoriesCacheKey = "trivia:categories"

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository // может быть nil, если Redis выключен
	cacheTTL     time.Duration
}

// NewCategoryService создает новый сервис категорий. cacheRepo может быть nil.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
	}
}

// ListCategories возвращает все категории. Сначала смотрит в кеш,
// ошибки кеша не прерывают запрос.
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	if s.cacheRepo != nil {
		var cached []entity.Category
		err := s.cacheRepo.GetJSON(ctx, categoriesCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[CategoryService] Ошибка чтения кеша категорий: %v", err)
		}
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(ctx, categoriesCacheKey, categories, s.cacheTTL); err != nil {
			log.Printf("[CategoryService] Не удалось записать категории в кеш: %v", err)
		}
	}
	return categories, nil
}

// GetCategory возвращает категорию по ID.
// Несуществующая категория: ErrInvalidCategory (422 на уровне API).
func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: #%d", ErrInvalidCategory, id)
		}
		return nil, fmt.Errorf("failed to get category #%d: %w", id, err)
	}
	return category, nil
}

// InvalidateCache удаляет закешированный список категорий
func (s *CategoryService) InvalidateCache(ctx context.Context) error {
	if s.cacheRepo == nil {
		return nil
	}
	return s.cacheRepo.Delete(ctx, categoriesCacheKey)
}

// DefaultCategories: категории, которыми заполняется пустая база
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

// SeedCategories создает категории types, если таблица категорий пуста.
// Возвращает количество созданных категорий.
func (s *CategoryService) SeedCategories(ctx context.Context, types []string) (int, error) {
	count, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		log.Printf("[CategoryService] Категории уже есть (%d), заполнение пропущено", count)
		return 0, nil
	}

	created := 0
	for _, typ := range types {
		if err := s.categoryRepo.Create(ctx, &entity.Category{Type: typ}); err != nil {
			return created, fmt.Errorf("failed to create category %q: %w", typ, err)
		}
		created++
	}

	if err := s.InvalidateCache(ctx); err != nil {
		log.Printf("[CategoryService] Не удалось сбросить кеш категорий: %v", err)
	}
	return created, nil
}
