package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/config"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/middleware"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/consts"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/logger"
)

func NewRouter(h *Handlers, cfg *config.Config) *gin.Engine {
	r := gin.New()
	logger.SetupGin(r)

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.AuditMiddleware())

	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.RateLimitMiddleware(consts.RateLimitGeneralKey, cfg.RateLimit.General))

	apiGroup.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	postGroup := apiGroup.Group("/posts")
	{
		// 固定路径要注册在 :post_id 之前，避免被参数路由吞掉
		postGroup.GET("/analytics", h.Post.GetAnalytics)
		postGroup.GET("/export", h.Post.ExportCSV)

		postGroup.GET("", h.Post.GetPosts)
		postGroup.POST("", h.Post.CreatePost)
		postGroup.GET("/:post_id", h.Post.GetPost)
		postGroup.PUT("/:post_id", h.Post.UpdatePost)
		postGroup.DELETE("/:post_id", h.Post.DeletePost)
	}

	aiGroup := apiGroup.Group("/ai")
	aiGroup.Use(middleware.RateLimitMiddleware(consts.RateLimitAIKey, cfg.RateLimit.AI))
	{
		aiGroup.GET("/predict-times", h.AI.PredictBestTimes)
		aiGroup.POST("/generate-headlines", h.AI.GenerateHeadlines)
		aiGroup.GET("/analyze/:post_id", h.AI.AnalyzePost)
	}

	return r
}
