package dto

import (
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// CurrentCategoryNone: значение currentCategory для ответов, не привязанных к категории
const CurrentCategoryNone = "-"

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   uint   `json:"category"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.CategoryID,
	}
}

// NewQuestionListResponse создает список DTO. Пустой список сериализуется как [], а не null.
func NewQuestionListResponse(questions []entity.Question) []QuestionResponse {
	result := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		result = append(result, NewQuestionResponse(&questions[i]))
	}
	return result
}

// CategoriesResponse: ответ GET /categories
type CategoriesResponse struct {
	Categories map[string]string `json:"categories"`
}

// QuestionPageResponse: ответ GET /questions.
// TotalQuestions: количество вопросов на текущей странице, а не во всей таблице.
type QuestionPageResponse struct {
	TotalQuestions  int                `json:"totalQuestions"`
	Questions       []QuestionResponse `json:"questions"`
	Categories      map[string]string  `json:"categories"`
	CurrentCategory string             `json:"currentCategory"`
}

// QuestionListResponse: ответ поиска и выборки по категории
type QuestionListResponse struct {
	TotalQuestions  int                `json:"totalQuestions"`
	Questions       []QuestionResponse `json:"questions"`
	CurrentCategory string             `json:"currentCategory"`
}

// NewQuestionListResult собирает ответ со списком вопросов
func NewQuestionListResult(questions []entity.Question, currentCategory string) QuestionListResponse {
	return QuestionListResponse{
		TotalQuestions:  len(questions),
		Questions:       NewQuestionListResponse(questions),
		CurrentCategory: currentCategory,
	}
}

// SuccessResponse: ответ на успешное изменение
type SuccessResponse struct {
	Success bool `json:"success"`
}

// QuizQuestionResponse: ответ POST /quizzes, когда вопрос найден.
// Если вопросов не осталось, отдается пустой объект {}.
type QuizQuestionResponse struct {
	Question QuestionResponse `json:"question"`
}
