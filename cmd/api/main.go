package main

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/config"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/llm"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/logger"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/mongo"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/redis"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/wire"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		fmt.Println("加载配置失败:", err)
		os.Exit(1)
	}

	logger.InitLogger()

	db, err := mongo.InitMongo(config.Cfg.Mongo)
	if err != nil {
		log.Error("MongoDB连接失败", "err", err)
		os.Exit(1)
	}

	if err := redis.InitRedis(config.Cfg.Redis); err != nil {
		log.Error("Redis连接失败", "err", err)
		os.Exit(1)
	}

	llmClient, err := llm.NewClient(config.Cfg.LLM)
	if err != nil {
		log.Error("大模型客户端初始化失败", "err", err)
		os.Exit(1)
	}

	router := wire.BuildApplication(db, llmClient, config.Cfg)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Cfg.Server.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("服务启动", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("收到退出信号，开始优雅关闭")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("服务异常退出", "err", err)
		os.Exit(1)
	}
	log.Info("服务已退出")
}
