package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/dto"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/llm"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/mongo"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

// MinHistoryPosts 低于该数量时不请求模型，直接返回保底推荐
const MinHistoryPosts = 5

const (
	ConfidenceLow = "low"

	defaultMessage = "Not enough historical data. Using default recommendations."
)

// defaultRecommendedTimes 保底时段，占位策略而非推导结果
var defaultRecommendedTimes = []llm.RecommendedSlot{
	{Hour: 9, DayOfWeek: 2, Reason: "Default recommendation: Tuesday 9 AM"},
	{Hour: 14, DayOfWeek: 4, Reason: "Default recommendation: Thursday 2 PM"},
	{Hour: 17, DayOfWeek: 6, Reason: "Default recommendation: Saturday 5 PM"},
}

type AIService interface {
	PredictBestTimes(ctx context.Context) (*llm.BestTimesResponse, error)
	GenerateHeadlines(ctx context.Context, req *dto.HeadlineRequestDTO) (*llm.HeadlinesResponse, error)
	AnalyzePost(ctx context.Context, postID string) (*dto.AnalyzeResultDTO, error)
}

type aiServiceImpl struct {
	llmClient *llm.Client
	postRepo  mongo.PostRepo
}

func NewAIService(llmClient *llm.Client, postRepo mongo.PostRepo) AIService {
	return &aiServiceImpl{
		llmClient: llmClient,
		postRepo:  postRepo,
	}
}

// PredictBestTimes 历史不足 5 篇时返回固定保底时段，否则把互动历史交给模型分析。
// 模型或解析失败直接向上抛出，超过阈值后不再回落到保底值。
func (s *aiServiceImpl) PredictBestTimes(ctx context.Context) (*llm.BestTimesResponse, error) {
	posts, err := s.postRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]llm.EngagementPoint, 0, len(posts))
	for _, post := range posts {
		if post.PublishedTime == nil {
			continue
		}
		points = append(points, llm.EngagementPoint{
			Hour:           post.PublishedTime.Hour(),
			DayOfWeek:      int(post.PublishedTime.Weekday()),
			EngagementRate: post.EngagementMetrics.EngagementRate,
			Views:          post.EngagementMetrics.Views,
			Likes:          post.EngagementMetrics.Likes,
			Shares:         post.EngagementMetrics.Shares,
		})
	}

	if len(points) < MinHistoryPosts {
		return &llm.BestTimesResponse{
			RecommendedTimes: defaultRecommendedTimes,
			Confidence:       ConfidenceLow,
			Message:          defaultMessage,
		}, nil
	}

	return s.llmClient.PredictBestTimes(ctx, points)
}

// GenerateHeadlines 空正文在请求模型前就拒绝
func (s *aiServiceImpl) GenerateHeadlines(ctx context.Context, req *dto.HeadlineRequestDTO) (*llm.HeadlinesResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}

	return s.llmClient.GenerateHeadlines(ctx, req.Content, req.Category, req.CurrentTitle)
}

// AnalyzePost 对单个帖子合并执行两项分析并把结果写回 aiSuggestions 缓存。
// 非事务：标题生成失败则不落任何数据，落库失败不回滚已返回的模型结果。
func (s *aiServiceImpl) AnalyzePost(ctx context.Context, postID string) (*dto.AnalyzeResultDTO, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	bestTimes, err := s.PredictBestTimes(ctx)
	if err != nil {
		return nil, err
	}

	headlines, err := s.llmClient.GenerateHeadlines(ctx, post.Content, post.Category, post.Title)
	if err != nil {
		return nil, err
	}

	suggestions := &mongo.AISuggestions{
		RecommendedHeadlines: headlines.Headlines,
		Confidence:           bestTimes.Confidence,
	}
	if len(bestTimes.RecommendedTimes) > 0 {
		top := bestTimes.RecommendedTimes[0]
		suggestions.RecommendedTime = &mongo.RecommendedSlot{
			Hour:      top.Hour,
			DayOfWeek: top.DayOfWeek,
			Reason:    top.Reason,
		}
	}
	post.AISuggestions = suggestions

	if err := s.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	postDTO, err := toPostDTO(post)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyzeResultDTO{
		BestTimes: bestTimes,
		Headlines: headlines,
		Post:      postDTO,
	}, nil
}
