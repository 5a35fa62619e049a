package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	"github.com/yourusername/trivia-quiz-api/internal/middleware"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService, questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// ListCategories возвращает все категории в виде {"id": "type"}
// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		handleError(c, "ListCategories", err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: entity.CategoryMap(categories)})
}

// GetCategoryQuestions возвращает все вопросы категории
// GET /categories/:id/questions
func (h *CategoryHandler) GetCategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint)

	category, questions, err := h.questionService.QuestionsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		log.Printf("[GetCategoryQuestions] request %s: %v", middleware.GetRequestID(c), err)
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResult(questions, category.Type))
}
