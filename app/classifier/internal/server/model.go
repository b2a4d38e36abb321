package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/conf"
	"github.com/iWorld-y/fin_radar/app/classifier/pkg/finbert"
	"github.com/iWorld-y/fin_radar/app/classifier/pkg/logger"
)

// NewScorer 初始化 FinBERT 推理服务，模型在后台加载
func NewScorer(c *conf.Model, lc *conf.Log, l log.Logger) (*finbert.Scorer, func(), error) {
	helper := log.NewHelper(l)

	level, file := "info", ""
	if lc != nil {
		level, file = lc.Level, lc.File
	}
	if err := logger.InitLogger(level, file); err != nil {
		helper.Errorf("Failed to init model logger: %v", err)
		_ = logger.InitLogger("info", "") // 降级处理
	}

	cfg := finbert.Config{}
	if c != nil {
		cfg = finbert.Config{ModelPath: c.Path, HFRepo: c.HfRepo, OnnxFile: c.OnnxFile}
	}
	scorer := finbert.NewScorer(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		// 加载失败时服务继续运行，分类接口返回 503
		if err := scorer.Load(ctx); err != nil {
			helper.Warnf("Failed to load model %s: %v", scorer.Name(), err)
		}
	}()

	cleanup := func() {
		cancel()
		<-done
		if err := scorer.Close(); err != nil {
			helper.Errorf("Failed to close model session: %v", err)
		}
	}
	return scorer, cleanup, nil
}
