package dto

import "time"

// PostCreateDTO 创建帖子请求体
type PostCreateDTO struct {
	Title             string                `json:"title" binding:"required,min=1,max=255"`
	Content           string                `json:"content" binding:"required,min=1"`
	Status            string                `json:"status" binding:"omitempty,oneof=draft scheduled published"`
	ScheduledTime     *time.Time            `json:"scheduledTime"`
	PublishedTime     *time.Time            `json:"publishedTime"`
	EngagementMetrics *EngagementMetricsDTO `json:"engagementMetrics"`
	Category          string                `json:"category"`
	Tags              []string              `json:"tags"`
}
