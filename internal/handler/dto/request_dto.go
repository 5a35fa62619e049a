package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexibleInt принимает в JSON как число, так и числовую строку.
// Фронтенд передает ID категорий строками (ключи объекта categories).
type FlexibleInt int

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer string %q", s)
		}
		*f = FlexibleInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleInt(n)
	return nil
}

// CreateQuestionRequest: тело POST /questions. Все четыре поля обязательны,
// проверяется наличие ключа, пустые строки допустимы.
type CreateQuestionRequest struct {
	Question   *string      `json:"question" binding:"required"`
	Answer     *string      `json:"answer" binding:"required"`
	Category   *FlexibleInt `json:"category" binding:"required"`
	Difficulty *FlexibleInt `json:"difficulty" binding:"required"`
}

// SearchRequest: тело POST /questionsearch. Пустая строка допустима, отсутствующий ключ недопустим.
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" binding:"required"`
}

// QuizCategoryRequest: категория игры. ID 0 означает "все категории".
type QuizCategoryRequest struct {
	ID   FlexibleInt `json:"id"`
	Type string      `json:"type"`
}

// QuizRequest: тело POST /quizzes
type QuizRequest struct {
	PreviousQuestions []uint               `json:"previous_questions"`
	QuizCategory      *QuizCategoryRequest `json:"quiz_category"`
}

// CategoryID возвращает ID категории игры или nil, если играем по всем категориям
func (r *QuizRequest) CategoryID() (*uint, error) {
	if r.QuizCategory == nil || r.QuizCategory.ID == 0 {
		return nil, nil
	}
	if r.QuizCategory.ID < 0 {
		return nil, fmt.Errorf("invalid quiz category id %d", r.QuizCategory.ID)
	}
	id := uint(r.QuizCategory.ID)
	return &id, nil
}
