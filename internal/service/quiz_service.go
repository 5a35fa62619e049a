package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
)

// QuizService выбирает вопросы для игры. Состояние между вызовами не хранится:
// уже показанные вопросы передает клиент.
type QuizService struct {
	questionRepo repository.QuestionRepository
	intn         func(n int) int
}

// NewQuizService создает новый сервис игры
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		intn:         rand.IntN,
	}
}

// NextQuestion возвращает случайный вопрос из категории categoryID (или из всех,
// если categoryID == nil), исключая previous. Если кандидатов нет, возвращает nil без ошибки.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID *uint, previous []uint) (*entity.Question, error) {
	var (
		pool []entity.Question
		err  error
	)
	if categoryID != nil {
		pool, err = s.questionRepo.ListByCategory(ctx, *categoryID)
	} else {
		pool, err = s.questionRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz candidates: %w", err)
	}

	pool = entity.ExcludeIDs(pool, previous)
	if len(pool) == 0 {
		return nil, nil
	}

	question := pool[s.intn(len(pool))]
	return &question, nil
}
