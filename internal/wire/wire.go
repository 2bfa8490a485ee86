package wire

import (
	"github.com/gin-gonic/gin"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/config"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/handler"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/llm"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/mongo"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/service"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

// BuildApplication 手工依赖装配：仓储 -> 服务 -> 处理器 -> 路由
func BuildApplication(db *mongodrv.Database, llmClient *llm.Client, cfg *config.Config) *gin.Engine {
	postRepo := mongo.NewPostRepo(db)

	postService := service.NewPostService(postRepo)
	analyticsService := service.NewAnalyticsService(postRepo)
	aiService := service.NewAIService(llmClient, postRepo)

	handlers := &api.Handlers{
		Post: handler.NewPostHandler(postService, analyticsService),
		AI:   handler.NewAIHandler(aiService),
	}

	return api.NewRouter(handlers, cfg)
}
