package dto

import "time"

// PostDTO 返回给前端的帖子视图，字段命名沿用客户端约定的 camelCase
type PostDTO struct {
	ID                string                `json:"id"`
	Title             string                `json:"title"`
	Content           string                `json:"content"`
	Status            string                `json:"status"`
	ScheduledTime     *time.Time            `json:"scheduledTime,omitempty"`
	PublishedTime     *time.Time            `json:"publishedTime,omitempty"`
	EngagementMetrics EngagementMetricsDTO  `json:"engagementMetrics"`
	AISuggestions     *AISuggestionsDTO     `json:"aiSuggestions,omitempty"`
	Category          string                `json:"category"`
	Tags              []string              `json:"tags"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

type EngagementMetricsDTO struct {
	Views          int64   `json:"views"`
	Likes          int64   `json:"likes"`
	Shares         int64   `json:"shares"`
	Comments       int64   `json:"comments"`
	EngagementRate float64 `json:"engagementRate"`
}

type AISuggestionsDTO struct {
	RecommendedTime      *RecommendedSlotDTO `json:"recommendedTime,omitempty"`
	RecommendedHeadlines []string            `json:"recommendedHeadlines"`
	Confidence           string              `json:"confidence"`
}

type RecommendedSlotDTO struct {
	Hour      int    `json:"hour"`
	DayOfWeek int    `json:"dayOfWeek"`
	Reason    string `json:"reason"`
}
