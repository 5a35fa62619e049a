package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categories   *CategoryService
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository, categories *CategoryService) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categories:   categories,
	}
}

// QuestionPage: страница списка вопросов вместе со всеми категориями
type QuestionPage struct {
	Questions  []entity.Question
	Categories []entity.Category
}

// ListQuestions возвращает страницу page (с 1) по QuestionsPerPage вопросов
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	// Страница, смещение которой не помещается в int, тоже невалидна
	if page < 1 || page-1 > math.MaxInt/QuestionsPerPage {
		return nil, ErrInvalidPage
	}

	offset := (page - 1) * QuestionsPerPage
	questions, err := s.questionRepo.List(ctx, QuestionsPerPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions (page %d): %w", page, err)
	}

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{Questions: questions, Categories: categories}, nil
}

// CreateQuestion сохраняет новый вопрос
func (s *QuestionService) CreateQuestion(ctx context.Context, question *entity.Question) error {
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return err
	}
	log.Printf("[QuestionService] Создан вопрос #%d (категория #%d)", question.ID, question.CategoryID)
	return nil
}

// DeleteQuestion удаляет вопрос по ID
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("question #%d: %w", id, err)
		}
		return fmt.Errorf("failed to delete question #%d: %w", id, err)
	}
	log.Printf("[QuestionService] Удален вопрос #%d", id)
	return nil
}

// SearchQuestions ищет вопросы по подстроке. Пустой результат: ErrNoMatches.
func (s *QuestionService) SearchQuestions(ctx context.Context, term string) ([]entity.Question, error) {
	questions, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoMatches
	}
	return questions, nil
}

// QuestionsByCategory возвращает категорию и все ее вопросы
func (s *QuestionService) QuestionsByCategory(ctx context.Context, categoryID uint) (*entity.Category, []entity.Question, error) {
	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	questions, err := s.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list questions of category #%d: %w", categoryID, err)
	}
	return category, questions, nil
}

// ExportQuestions возвращает вопросы для выгрузки: все или одной категории
func (s *QuestionService) ExportQuestions(ctx context.Context, categoryID *uint) ([]entity.Question, error) {
	if categoryID == nil {
		return s.questionRepo.ListAll(ctx)
	}
	_, questions, err := s.QuestionsByCategory(ctx, *categoryID)
	return questions, err
}
