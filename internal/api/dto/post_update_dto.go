package dto

import "time"

// PostUpdateDTO 部分更新请求体，nil 字段表示不修改
type PostUpdateDTO struct {
	Title             *string               `json:"title" binding:"omitempty,min=1,max=255"`
	Content           *string               `json:"content" binding:"omitempty,min=1"`
	Status            *string               `json:"status" binding:"omitempty,oneof=draft scheduled published"`
	ScheduledTime     *time.Time            `json:"scheduledTime"`
	PublishedTime     *time.Time            `json:"publishedTime"`
	EngagementMetrics *EngagementMetricsDTO `json:"engagementMetrics"`
	Category          *string               `json:"category"`
	Tags              []string              `json:"tags"`
}
