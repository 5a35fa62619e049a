package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// QuizHandler обрабатывает запросы игрового режима
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик игры
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// NextQuestion возвращает случайный вопрос, которого еще не было.
// POST /quizzes
//
// Если вопросов не осталось, отвечает пустым объектом {} со статусом 200.
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	categoryID, err := req.CategoryID()
	if err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), categoryID, req.PreviousQuestions)
	if err != nil {
		handleError(c, "NextQuestion", err)
		return
	}

	if question == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, dto.QuizQuestionResponse{Question: dto.NewQuestionResponse(question)})
}
