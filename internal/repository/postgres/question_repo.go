package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос в отдельной транзакции.
// Ссылка на несуществующую категорию возвращается как apperrors.ErrValidation.
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(question).Error
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: category #%d does not exist", apperrors.ErrValidation, question.CategoryID)
		}
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Delete удаляет вопрос. Если вопроса нет, возвращает apperrors.ErrNotFound,
// транзакция при этом откатывается.
func (r *QuestionRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var question entity.Question
		if err := tx.First(&question, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}

		result := tx.Delete(&question)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Удален параллельным запросом между SELECT и DELETE
			return apperrors.ErrNotFound
		}
		return nil
	})
}

// List возвращает страницу вопросов, упорядоченных по id
func (r *QuestionRepo) List(ctx context.Context, limit, offset int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&questions).Error
	return questions, err
}

// Search ищет вопросы по подстроке без учета регистра.
// Символы шаблона LIKE в term экранируются и совпадают буквально.
func (r *QuestionRepo) Search(ctx context.Context, term string) ([]entity.Question, error) {
	var questions []entity.Question
	condition, pattern := searchCondition(r.db.Dialector.Name(), term)
	err := r.db.WithContext(ctx).
		Where(condition, pattern).
		Order("id").
		Find(&questions).Error
	return questions, err
}

// searchCondition строит условие поиска для диалекта. В PostgreSQL используется ILIKE.
// В SQLite LOWER приводит к нижнему регистру только ASCII, поэтому там поиск
// по не-ASCII тексту остается чувствительным к регистру.
func searchCondition(dialect, term string) (string, string) {
	if dialect == "postgres" {
		return "question ILIKE ? ESCAPE '\\'", "%" + escapeLike(term) + "%"
	}
	return "LOWER(question) LIKE ? ESCAPE '\\'", "%" + escapeLike(strings.ToLower(term)) + "%"
}

// ListByCategory возвращает все вопросы категории
func (r *QuestionRepo) ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).Where("category = ?", categoryID).Order("id").Find(&questions).Error
	return questions, err
}

// ListAll возвращает все вопросы
func (r *QuestionRepo) ListAll(ctx context.Context) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).Order("id").Find(&questions).Error
	return questions, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
