package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/config"
	"github.com/yourusername/trivia-quiz-api/internal/middleware"
)

// RouterDeps содержит все, что нужно для сборки маршрутов API
type RouterDeps struct {
	Questions  *QuestionHandler
	Categories *CategoryHandler
	Quizzes    *QuizHandler
	Export     *ExportHandler
	Index      *IndexHandler

	CORS config.CORSConfig

	// RateLimiter может быть nil: тогда POST /questionsearch и /quizzes не ограничиваются
	RateLimiter *middleware.RateLimiter
	RateLimit   middleware.RateLimitConfig

	TrustedProxies []string
}

// NewRouter собирает gin.Engine со всеми маршрутами и middleware
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		// Невалидный список прокси: не доверяем никому
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(corsConfig(deps.CORS)))

	router.NoRoute(func(c *gin.Context) { abortWithError(c, http.StatusNotFound) })
	router.NoMethod(func(c *gin.Context) { abortWithError(c, http.StatusMethodNotAllowed) })

	limit := func(c *gin.Context) { c.Next() }
	if deps.RateLimiter != nil {
		limit = deps.RateLimiter.Limit(deps.RateLimit)
	}

	router.GET("/", deps.Index.Index)
	router.GET("/healthz", deps.Index.Health)

	router.GET("/categories", deps.Categories.ListCategories)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID", http.StatusUnprocessableEntity),
		deps.Categories.GetCategoryQuestions,
	)

	questions := router.Group("/questions")
	{
		questions.GET("", deps.Questions.ListQuestions)
		questions.POST("", deps.Questions.CreateQuestion)
		questions.GET("/export", deps.Export.ExportQuestions)
		questions.DELETE("/:id",
			middleware.ExtractUintParam("id", "questionID", http.StatusUnprocessableEntity),
			deps.Questions.DeleteQuestion,
		)
	}

	router.POST("/questionsearch", limit, deps.Questions.SearchQuestions)
	router.POST("/quizzes", limit, deps.Quizzes.NextQuestion)

	return router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  cfg.AllowHeaders,
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowOrigins) == 0 || (len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	if len(corsCfg.AllowMethods) == 0 {
		corsCfg.AllowMethods = []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"}
	}
	if len(corsCfg.AllowHeaders) == 0 {
		corsCfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	}
	return corsCfg
}
