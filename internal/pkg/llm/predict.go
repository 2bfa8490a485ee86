package llm

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"

	"github.com/goccy/go-json"
)

// EngagementPoint 单篇已发布帖子的互动摘要，序列化后喂给模型
type EngagementPoint struct {
	Hour           int     `json:"hour"`
	DayOfWeek      int     `json:"dayOfWeek"`
	EngagementRate float64 `json:"engagementRate"`
	Views          int64   `json:"views"`
	Likes          int64   `json:"likes"`
	Shares         int64   `json:"shares"`
}

const predictTemperature = 0.7

// PredictBestTimes 将互动历史提交给模型，要求返回三个推荐时段
func (c *Client) PredictBestTimes(ctx context.Context, points []EngagementPoint) (*BestTimesResponse, error) {
	data, err := json.MarshalIndent(points, "", "  ")
	if err != nil {
		log.Error("最佳时间预测-AI大模型请求数据序列化失败", "err", err)
		return nil, err
	}

	prompt := fmt.Sprintf(`Analyze the following engagement data from published posts and recommend the top 3 best times to publish content:

%s

Consider:
1. Time of day (hour) when engagement is highest
2. Day of week when engagement is highest
3. Engagement rate patterns

Respond in JSON format with this structure:
{
  "recommendedTimes": [
    { "hour": 9, "dayOfWeek": 1, "reason": "explanation" },
    { "hour": 14, "dayOfWeek": 3, "reason": "explanation" },
    { "hour": 17, "dayOfWeek": 5, "reason": "explanation" }
  ],
  "confidence": "high/medium/low",
  "insights": "overall analysis summary"
}

DayOfWeek: 0=Sunday, 1=Monday, 2=Tuesday, 3=Wednesday, 4=Thursday, 5=Friday, 6=Saturday`, string(data))

	resp, err := c.fetchModel(ctx, c.predictPrompt, prompt, predictTemperature)
	if err != nil {
		log.Error("最佳时间预测-AI大模型请求失败", "err", err)
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("最佳时间预测-AI大模型返回数据为空")
	}

	out, err := ParseBestTimes(resp.Choices[0].Content)
	if err != nil {
		log.Error("最佳时间预测-AI大模型返回数据解析失败", "err", err)
		return nil, err
	}
	return out, nil
}
