package llm

import (
	"strings"

	"github.com/goccy/go-json"
)

// RecommendedSlot 模型推荐的发布时段，DayOfWeek: 0=周日..6=周六
type RecommendedSlot struct {
	Hour      int    `json:"hour"`
	DayOfWeek int    `json:"dayOfWeek"`
	Reason    string `json:"reason"`
}

// BestTimesResponse 最佳发布时间分析结果，模型返回的 JSON 原样透传
type BestTimesResponse struct {
	RecommendedTimes []RecommendedSlot `json:"recommendedTimes"`
	Confidence       string            `json:"confidence"`
	Insights         string            `json:"insights,omitempty"`
	Message          string            `json:"message,omitempty"`
}

// HeadlinesResponse 标题生成结果
type HeadlinesResponse struct {
	Headlines   []string `json:"headlines"`
	Explanation string   `json:"explanation"`
}

func ParseBestTimes(s string) (*BestTimesResponse, error) {
	out := &BestTimesResponse{}
	if err := json.Unmarshal([]byte(stripFences(s)), out); err != nil {
		return nil, err
	}
	return out, nil
}

func ParseHeadlines(s string) (*HeadlinesResponse, error) {
	out := &HeadlinesResponse{}
	if err := json.Unmarshal([]byte(stripFences(s)), out); err != nil {
		return nil, err
	}
	return out, nil
}

// stripFences 模型偶尔会把 JSON 包在 markdown 代码块里
func stripFences(s string) string {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
