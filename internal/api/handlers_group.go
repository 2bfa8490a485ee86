package api

import (
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/handler"
)

// Handlers 汇总所有 HTTP 处理器，由 wire 装配
type Handlers struct {
	Post *handler.PostHandler
	AI   *handler.AIHandler
}
