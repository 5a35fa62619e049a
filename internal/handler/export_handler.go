package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

var exportHeaders = []string{"ID", "Question", "Answer", "Category", "Difficulty"}

// ExportHandler выгружает банк вопросов в CSV или Excel
type ExportHandler struct {
	questionService *service.QuestionService
}

// NewExportHandler создает новый обработчик выгрузки
func NewExportHandler(questionService *service.QuestionService) *ExportHandler {
	return &ExportHandler{questionService: questionService}
}

// ExportQuestions выгружает вопросы
// GET /questions/export?format=csv|xlsx[&category=<id>]
func (h *ExportHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	var categoryID *uint
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			abortWithError(c, http.StatusUnprocessableEntity)
			return
		}
		v := uint(id)
		categoryID = &v
	}

	questions, err := h.questionService.ExportQuestions(c.Request.Context(), categoryID)
	if err != nil {
		handleError(c, "ExportQuestions", err)
		return
	}

	filename := fmt.Sprintf("trivia_questions_%s", time.Now().Format("2006-01-02"))
	if categoryID != nil {
		filename = fmt.Sprintf("trivia_questions_category_%d_%s", *categoryID, time.Now().Format("2006-01-02"))
	}

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	default:
		h.exportCSV(c, questions, filename)
	}
}

// exportCSV выгружает вопросы в CSV с правильным экранированием спецсимволов
func (h *ExportHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, q := range questions {
		writer.Write([]string{
			strconv.FormatUint(uint64(q.ID), 10),
			sanitizeForExcel(q.Text),
			sanitizeForExcel(q.Answer),
			strconv.FormatUint(uint64(q.CategoryID), 10),
			strconv.Itoa(q.Difficulty),
		})
	}
}

// exportXLSX выгружает вопросы в Excel с использованием StreamWriter
func (h *ExportHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[ExportHandler] Ошибка создания StreamWriter: %v", err)
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, header := range exportHeaders {
		headers[i] = header
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[ExportHandler] Ошибка записи заголовков: %v", err)
	}

	for i, q := range questions {
		rowNum := i + 2 // 1 - заголовки
		row := []interface{}{q.ID, sanitizeForExcel(q.Text), sanitizeForExcel(q.Answer), q.CategoryID, q.Difficulty}
		if err := sw.SetRow(fmt.Sprintf("A%d", rowNum), row); err != nil {
			log.Printf("[ExportHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[ExportHandler] Ошибка при Flush: %v", err)
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[ExportHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
