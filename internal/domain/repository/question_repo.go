package repository

import (
	"context"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	GetByID(ctx context.Context, id uint) (*entity.Question, error)
	Delete(ctx context.Context, id uint) error

	// List возвращает страницу вопросов, упорядоченных по id
	List(ctx context.Context, limit, offset int) ([]entity.Question, error)
	// Search ищет вопросы, текст которых содержит term (без учета регистра)
	Search(ctx context.Context, term string) ([]entity.Question, error)
	// ListByCategory возвращает все вопросы категории
	ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error)
	// ListAll возвращает все вопросы хранилища
	ListAll(ctx context.Context) ([]entity.Question, error)
}
