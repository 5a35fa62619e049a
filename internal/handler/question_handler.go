package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	"github.com/yourusername/trivia-quiz-api/internal/middleware"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions возвращает страницу вопросов и все категории
// GET /questions?page=n
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	// Нечисловое значение трактуется как страница по умолчанию,
	// число вне диапазона int считается невалидной страницей
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			abortWithError(c, http.StatusUnprocessableEntity)
			return
		}
		page = 1
	}

	result, err := h.questionService.ListQuestions(c.Request.Context(), page)
	if err != nil {
		handleError(c, "ListQuestions", err)
		return
	}

	questions := dto.NewQuestionListResponse(result.Questions)
	c.JSON(http.StatusOK, dto.QuestionPageResponse{
		TotalQuestions:  len(questions),
		Questions:       questions,
		Categories:      entity.CategoryMap(result.Categories),
		CurrentCategory: dto.CurrentCategoryNone,
	})
}

// DeleteQuestion удаляет вопрос
// DELETE /questions/:id
//
// Любая ошибка, включая "вопрос не найден", возвращается как 422:
// так исторически ожидает клиент.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	if err := h.questionService.DeleteQuestion(c.Request.Context(), questionID); err != nil {
		log.Printf("[DeleteQuestion] request %s: %v", middleware.GetRequestID(c), err)
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// CreateQuestion добавляет вопрос
// POST /questions
//
// Ошибка сохранения (например, несуществующая категория) возвращается как 404,
// как в исходном API.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[CreateQuestion] invalid body: %v", err)
		abortWithError(c, http.StatusBadRequest)
		return
	}
	if *req.Category < 0 {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	question := &entity.Question{
		Text:       *req.Question,
		Answer:     *req.Answer,
		CategoryID: uint(*req.Category),
		Difficulty: int(*req.Difficulty),
	}
	if err := h.questionService.CreateQuestion(c.Request.Context(), question); err != nil {
		log.Printf("[CreateQuestion] request %s: %v", middleware.GetRequestID(c), err)
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// SearchQuestions ищет вопросы по подстроке без учета регистра
// POST /questionsearch
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	questions, err := h.questionService.SearchQuestions(c.Request.Context(), *req.SearchTerm)
	if err != nil {
		handleError(c, "SearchQuestions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResult(questions, dto.CurrentCategoryNone))
}
