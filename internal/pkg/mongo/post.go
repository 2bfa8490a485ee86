package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post 帖子文档模型，唯一的持久化实体
type Post struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Title             string             `bson:"title"`
	Content           string             `bson:"content"`
	Status            string             `bson:"status"` // draft / scheduled / published
	ScheduledTime     *time.Time         `bson:"scheduled_time,omitempty"`
	PublishedTime     *time.Time         `bson:"published_time,omitempty"`
	EngagementMetrics EngagementMetrics  `bson:"engagement_metrics"`
	AISuggestions     *AISuggestions     `bson:"ai_suggestions,omitempty"`
	Category          string             `bson:"category"`
	Tags              []string           `bson:"tags"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

// EngagementMetrics 互动指标，EngagementRate 为派生字段，每次保存前重算
type EngagementMetrics struct {
	Views          int64   `bson:"views"`
	Likes          int64   `bson:"likes"`
	Shares         int64   `bson:"shares"`
	Comments       int64   `bson:"comments"`
	EngagementRate float64 `bson:"engagement_rate"`
}

// AISuggestions 最近一次 AI 分析结果的缓存
type AISuggestions struct {
	RecommendedTime      *RecommendedSlot `bson:"recommended_time,omitempty"`
	RecommendedHeadlines []string         `bson:"recommended_headlines,omitempty"`
	Confidence           string           `bson:"confidence,omitempty"`
}

// RecommendedSlot 推荐的发布时段 (小时 + 星期，0=周日..6=周六)
type RecommendedSlot struct {
	Hour      int    `bson:"hour"`
	DayOfWeek int    `bson:"day_of_week"`
	Reason    string `bson:"reason"`
}
