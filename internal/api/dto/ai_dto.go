package dto

import (
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/llm"
)

// HeadlineRequestDTO 标题生成请求体
type HeadlineRequestDTO struct {
	Content      string `json:"content" binding:"required"`
	Category     string `json:"category"`
	CurrentTitle string `json:"currentTitle"`
}

// AnalyzeResultDTO 合并分析结果，同时写回帖子的 aiSuggestions 缓存
type AnalyzeResultDTO struct {
	BestTimes *llm.BestTimesResponse `json:"bestTimes"`
	Headlines *llm.HeadlinesResponse `json:"headlines"`
	Post      *PostDTO               `json:"post"`
}
