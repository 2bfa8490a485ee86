package llm

import (
	"context"
	log "log/slog"
	"os"

	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/config"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Client AI大模型客户端，显式构造后注入服务层，便于测试替换
type Client struct {
	model     llms.Model
	textModel string

	predictPrompt  string
	headlinePrompt string
}

func NewClient(cfg config.LLMConfig) (*Client, error) {
	model, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return nil, err
	}

	// 从prompt txt文件中读取system prompt
	return &Client{
		model:          model,
		textModel:      cfg.TextModel,
		predictPrompt:  readPrompt(cfg.PromptsPath.PredictTimes),
		headlinePrompt: readPrompt(cfg.PromptsPath.GenerateHeadlines),
	}, nil
}

// NewClientWithModel 使用外部提供的模型实例构造客户端，测试用
func NewClientWithModel(model llms.Model, textModel string) *Client {
	return &Client{
		model:     model,
		textModel: textModel,
	}
}

func readPrompt(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		log.Error("读取prompt文件失败", "file", file, "err", err)
		return ""
	}
	return string(data)
}

func (c *Client) fetchModel(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (*llms.ContentResponse, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer TextSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	log.Info("正在请求AI大模型")
	return c.model.GenerateContent(ctx, messages,
		llms.WithModel(c.textModel),
		llms.WithTemperature(temp),
	)
}
