package llm

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"
)

const (
	headlineTemperature = 0.8

	// ContentSampleLimit 喂给模型的正文截断长度
	ContentSampleLimit = 500
)

// GenerateHeadlines 基于正文生成五个备选标题
func (c *Client) GenerateHeadlines(ctx context.Context, content, category, currentTitle string) (*HeadlinesResponse, error) {
	sample := content
	if len(sample) > ContentSampleLimit {
		sample = sample[:ContentSampleLimit]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`Given the following blog post content, generate 5 catchy and engaging headlines that would maximize reader engagement.

Content: %s...
`, sample))
	if category != "" {
		sb.WriteString(fmt.Sprintf("Category: %s\n", category))
	}
	if currentTitle != "" {
		sb.WriteString(fmt.Sprintf("Current title: %s\n", currentTitle))
	}
	sb.WriteString(`
Requirements:
- Make headlines attention-grabbing and click-worthy
- Keep them between 40-60 characters
- Use power words and emotional triggers
- Make them specific and valuable
- Optimize for social media sharing

Return response in JSON format:
{
  "headlines": ["headline 1", "headline 2", "headline 3", "headline 4", "headline 5"],
  "explanation": "brief explanation of the strategy used"
}`)

	resp, err := c.fetchModel(ctx, c.headlinePrompt, sb.String(), headlineTemperature)
	if err != nil {
		log.Error("标题生成-AI大模型请求失败", "err", err)
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("标题生成-AI大模型返回数据为空")
	}

	out, err := ParseHeadlines(resp.Choices[0].Content)
	if err != nil {
		log.Error("标题生成-AI大模型返回数据解析失败", "err", err)
		return nil, err
	}
	return out, nil
}
