package repository

import (
	"context"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями.
// Создание категорий через API не предусмотрено, поэтому Create используется
// только сидированием и тестами.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Count(ctx context.Context) (int64, error)
}
