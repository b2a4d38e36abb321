// Package finbert 通过 hugot 在本地运行 FinBERT 文本分类模型，
// 输出 [Positive, Negative, Neutral] 顺序的三维原始情绪 logits。
package finbert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/backends"

	"github.com/iWorld-y/fin_radar/app/classifier/pkg/logger"
	"github.com/iWorld-y/fin_radar/app/classifier/pkg/taxonomy"
)

var (
	// ErrNotLoaded 模型尚未加载
	ErrNotLoaded = errors.New("finbert: model not loaded")
	// ErrLabelMissing 模型的 id2label 缺少 positive/negative/neutral 之一
	ErrLabelMissing = errors.New("finbert: sentiment label missing")
	// ErrClosed Close 之后不能再加载
	ErrClosed = errors.New("finbert: scorer closed")
)

// DefaultHFRepo 默认的 HuggingFace 模型仓库
const DefaultHFRepo = "ProsusAI/finbert"

// Config 模型配置
type Config struct {
	// ModelPath 本地模型目录，不存在时从 HFRepo 下载到其父目录
	ModelPath string
	HFRepo    string
	OnnxFile  string
}

// logitRunner 是 TextClassificationPipeline 中分词与前向计算两步，
// 跳过 Postprocess 以拿到未经 softmax 的 logits
type logitRunner interface {
	Preprocess(batch *backends.PipelineBatch, inputs []string) error
	Forward(batch *backends.PipelineBatch) error
}

// model 一次成功加载的产物，发布后只读
type model struct {
	session *hugot.Session
	runner  logitRunner
	// order[i] 为 sentimentLabels[i] 在模型输出中的下标
	order [taxonomy.SentimentDims]int
}

func (m *model) destroy() error {
	if m.session == nil {
		return nil
	}
	return m.session.Destroy()
}

// Scorer FinBERT 推理服务
type Scorer struct {
	cfg Config

	download func(repo, dest string, opts hugot.DownloadOptions) (string, error)
	build    func(modelPath string) (*model, error)

	// loadMu 串行化 Load；mu 只保护发布、推理与关闭
	loadMu  sync.Mutex
	mu      sync.RWMutex
	current atomic.Pointer[model]
	closed  bool
}

// NewScorer 创建未加载的推理服务，需调用 Load
func NewScorer(cfg Config) *Scorer {
	if cfg.HFRepo == "" {
		cfg.HFRepo = DefaultHFRepo
	}
	s := &Scorer{cfg: cfg, download: hugot.DownloadModel}
	s.build = s.buildPipeline
	return s
}

// Name 返回模型名称
func (s *Scorer) Name() string {
	return s.cfg.HFRepo
}

// Ready 模型是否已加载，加载过程中立即返回 false
func (s *Scorer) Ready() bool {
	return s.current.Load() != nil
}

// Load 下载并加载模型，重复调用时直接返回。
// 下载与构建不持有推理锁，ctx 取消后立即返回。
func (s *Scorer) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.Ready() {
		logger.Log.Warn("模型已加载，跳过重复加载")
		return nil
	}

	modelPath, err := s.ensureModel(ctx)
	if err != nil {
		return fmt.Errorf("prepare model: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Log.Infof("正在加载模型: %s", modelPath)
	m, err := s.build(modelPath)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || ctx.Err() != nil {
		_ = m.destroy()
		if s.closed {
			return ErrClosed
		}
		return ctx.Err()
	}
	s.current.Store(m)
	logger.Log.Info("模型加载成功")
	return nil
}

func (s *Scorer) buildPipeline(modelPath string) (*model, error) {
	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	pipeline, err := hugot.NewPipeline(session, hugot.TextClassificationConfig{
		ModelPath:    modelPath,
		Name:         "finbert",
		OnnxFilename: s.cfg.OnnxFile,
	})
	if err != nil {
		_ = session.Destroy()
		return nil, fmt.Errorf("create pipeline: %w", err)
	}

	order, err := labelOrder(pipeline.GetModel().IDLabelMap)
	if err != nil {
		_ = session.Destroy()
		return nil, err
	}
	return &model{session: session, runner: pipeline, order: order}, nil
}

func (s *Scorer) ensureModel(ctx context.Context) (string, error) {
	if s.cfg.ModelPath != "" {
		if _, err := os.Stat(s.cfg.ModelPath); err == nil {
			return s.cfg.ModelPath, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
	}

	dest := "models"
	if s.cfg.ModelPath != "" {
		dest = filepath.Dir(filepath.Clean(s.cfg.ModelPath))
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return "", fmt.Errorf("create model dir: %w", err)
	}

	logger.Log.Infof("首次加载需要下载模型 %s 到 %s，请稍候...", s.cfg.HFRepo, dest)
	opts := hugot.NewDownloadOptions()
	if s.cfg.OnnxFile != "" {
		opts.OnnxFilePath = s.cfg.OnnxFile
	}

	type result struct {
		path string
		err  error
	}
	// 下载本身不支持取消，取消时放弃等待，文件仍会落盘供下次使用
	done := make(chan result, 1)
	go func() {
		path, err := s.download(s.cfg.HFRepo, dest, opts)
		done <- result{path, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("download from HuggingFace: %w", r.err)
		}
		return r.path, nil
	}
}

// Score 返回 text 的原始情绪 logits，顺序为 [Positive, Negative, Neutral]
func (s *Scorer) Score(ctx context.Context, text string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	m := s.current.Load()
	if m == nil {
		return nil, ErrNotLoaded
	}

	raw, err := runLogits(m.runner, text)
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}
	return orderLogits(raw, m.order)
}

func runLogits(r logitRunner, text string) (out []float32, err error) {
	batch := backends.NewBatch(1)
	defer func() {
		err = errors.Join(err, batch.Destroy())
	}()

	if err := r.Preprocess(batch, []string{text}); err != nil {
		return nil, err
	}
	if err := r.Forward(batch); err != nil {
		return nil, err
	}
	if len(batch.OutputValues) == 0 {
		return nil, errors.New("empty output")
	}
	logits, ok := batch.OutputValues[0].([][]float32)
	if !ok || len(logits) == 0 {
		return nil, fmt.Errorf("unexpected output %T", batch.OutputValues[0])
	}
	return logits[0], nil
}

var sentimentLabels = [taxonomy.SentimentDims]string{"positive", "negative", "neutral"}

// labelOrder 根据模型的 id2label 找到三个情绪类别在输出中的位置
func labelOrder(idLabel map[int]string) ([taxonomy.SentimentDims]int, error) {
	var order [taxonomy.SentimentDims]int
	seen := make([]bool, taxonomy.SentimentDims)

	for id, label := range idLabel {
		idx := slices.Index(sentimentLabels[:], strings.ToLower(strings.TrimSpace(label)))
		if idx < 0 {
			continue
		}
		order[idx] = id
		seen[idx] = true
	}

	for i, ok := range seen {
		if !ok {
			return order, fmt.Errorf("%w: %s", ErrLabelMissing, sentimentLabels[i])
		}
	}
	return order, nil
}

// orderLogits 按 order 把模型输出重排为 [Positive, Negative, Neutral]，数值不做任何变换
func orderLogits(raw []float32, order [taxonomy.SentimentDims]int) ([]float64, error) {
	logits := make([]float64, taxonomy.SentimentDims)
	for i, id := range order {
		if id < 0 || id >= len(raw) {
			return nil, fmt.Errorf("logit index %d out of range (%d outputs)", id, len(raw))
		}
		logits[i] = float64(raw[id])
	}
	return logits, nil
}

// Close 释放推理会话，等待进行中的推理结束
func (s *Scorer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	m := s.current.Swap(nil)
	if m == nil {
		return nil
	}
	return m.destroy()
}
