package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/dto"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/response"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/service"
)

type AIHandler struct {
	aiService service.AIService
}

func NewAIHandler(aiService service.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// PredictBestTimes 根据历史互动数据预测最佳发布时间
func (h *AIHandler) PredictBestTimes(c *gin.Context) {
	result, err := h.aiService.PredictBestTimes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GenerateHeadlines 为给定正文生成候选标题
func (h *AIHandler) GenerateHeadlines(c *gin.Context) {
	var req dto.HeadlineRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.aiService.GenerateHeadlines(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AnalyzePost 综合分析单个帖子并回写建议
func (h *AIHandler) AnalyzePost(c *gin.Context) {
	result, err := h.aiService.AnalyzePost(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
