package service

import (
	"fmt"

	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// QuestionsPerPage: фиксированный размер страницы списка вопросов
const QuestionsPerPage = 10

// Ошибки сервисов. Все они оборачивают общие ошибки apperrors,
// поэтому обработчики проверяют их через errors.Is.
var (
	ErrInvalidPage     = fmt.Errorf("%w: page must be >= 1 and addressable", apperrors.ErrUnprocessable)
	ErrInvalidCategory = fmt.Errorf("%w: category does not exist", apperrors.ErrUnprocessable)
	ErrNoMatches       = fmt.Errorf("%w: no questions match the search term", apperrors.ErrNotFound)
)
