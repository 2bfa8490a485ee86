package handler

import (
	"encoding/csv"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/dto"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/response"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/service"
)

type PostHandler struct {
	postService      service.PostService
	analyticsService service.AnalyticsService
}

func NewPostHandler(postService service.PostService, analyticsService service.AnalyticsService) *PostHandler {
	return &PostHandler{
		postService:      postService,
		analyticsService: analyticsService,
	}
}

// GetPosts 获取全部帖子，按创建时间倒序
func (h *PostHandler) GetPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetPost 按 ID 获取帖子
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// CreatePost 创建帖子
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.PostCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// UpdatePost 部分更新帖子，返回更新后的完整文档
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req dto.PostUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), c.Param("post_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// DeletePost 删除帖子
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postService.DeletePost(c.Request.Context(), c.Param("post_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// GetAnalytics 已发布帖子的互动数据聚合
func (h *PostHandler) GetAnalytics(c *gin.Context) {
	analytics, err := h.analyticsService.GetEngagementAnalytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analytics)
}

// ExportCSV 导出待发布帖子为 CSV 附件
func (h *PostHandler) ExportCSV(c *gin.Context) {
	rows, err := h.postService.ExportScheduledCSV(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoScheduledPosts) {
			response.Fail(c, response.NotFound, err.Error())
			return
		}
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="scheduled-posts.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(rows); err != nil {
		// 响应头已发出，只能记录错误
		_ = c.Error(err)
	}
}
