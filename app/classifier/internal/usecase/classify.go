package usecase

import (
	"context"
	stderrors "errors"
	"net/url"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-shiori/go-readability"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/conf"
	"github.com/iWorld-y/fin_radar/app/classifier/internal/domain"
	"github.com/iWorld-y/fin_radar/app/classifier/pkg/taxonomy"
)

// DefaultCacheSize logits 缓存默认容量
const DefaultCacheSize = 1024

// SentimentScorer 把文本转换为 [Positive, Negative, Neutral] 情绪 logits
type SentimentScorer interface {
	Ready() bool
	Name() string
	Score(ctx context.Context, text string) ([]float64, error)
}

// ClassifyUseCase 新闻分类业务逻辑
type ClassifyUseCase struct {
	scorer  SentimentScorer
	records *RecordUseCase
	cache   *lru.Cache[string, []float64]
	limiter *rate.Limiter
	log     *log.Helper

	temperature float64
	topK        int
}

// NewClassifyUseCase 创建分类业务逻辑实例
func NewClassifyUseCase(scorer SentimentScorer, records *RecordUseCase, m *conf.Model, l *conf.Limit, logger log.Logger) (*ClassifyUseCase, error) {
	temperature, topK, cacheSize := taxonomy.DefaultTemperature, taxonomy.DefaultTopK, DefaultCacheSize
	if m != nil {
		if m.Temperature > 0 {
			temperature = m.Temperature
		}
		if m.TopK > 0 {
			topK = int(m.TopK)
		}
		if m.CacheSize > 0 {
			cacheSize = int(m.CacheSize)
		}
	}

	cache, err := lru.New[string, []float64](cacheSize)
	if err != nil {
		return nil, err
	}

	// 未配置 qps 时不限流
	limiter := rate.NewLimiter(rate.Inf, 0)
	if l != nil && l.Qps > 0 {
		burst := int(l.Burst)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(l.Qps), burst)
	}

	return &ClassifyUseCase{
		scorer:      scorer,
		records:     records,
		cache:       cache,
		limiter:     limiter,
		log:         log.NewHelper(logger),
		temperature: temperature,
		topK:        topK,
	}, nil
}

// ModelName 返回模型名称
func (uc *ClassifyUseCase) ModelName() string { return uc.scorer.Name() }

// ModelReady 模型是否可用
func (uc *ClassifyUseCase) ModelReady() bool { return uc.scorer.Ready() }

// Classify 对新闻文本执行推理并映射到标准化财经分类
func (uc *ClassifyUseCase) Classify(ctx context.Context, in *domain.ClassifyInput) (*domain.ClassifyOutput, error) {
	// input 原样回显，text 为参与推理的去空白文本
	input, text := in.Text, strings.TrimSpace(in.Text)
	if text == "" && strings.TrimSpace(in.HTML) != "" {
		extracted, err := extractText(in.HTML)
		if err != nil {
			uc.log.Warnf("failed to extract article text: %v", err)
		}
		input, text = extracted, extracted
	}
	if text == "" {
		return nil, errors.BadRequest("EMPTY_TEXT", "text must not be empty")
	}

	t, k := uc.params(in.Temperature, in.TopK)
	if !(t > 0) {
		return nil, errors.BadRequest("INVALID_PARAMETER", "temperature must be > 0")
	}
	if !uc.scorer.Ready() {
		return nil, errors.ServiceUnavailable("MODEL_NOT_LOADED", "model is not loaded")
	}

	logits, err := uc.logits(ctx, text)
	if err != nil {
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		uc.log.Errorf("inference failed: %v", err)
		return nil, errors.InternalServer("CLASSIFY_FAILED", err.Error())
	}

	res, err := uc.mapScores(logits, t, k)
	if err != nil {
		return nil, err
	}

	out := &domain.ClassifyOutput{Text: input, Result: res}
	if in.Save {
		best := res.TopK[0]
		rec, err := uc.records.Add(ctx, &domain.Record{
			Text:       input,
			Label:      string(best.Label),
			Confidence: best.Score,
		})
		if err != nil {
			return nil, err
		}
		out.Record = rec
	}
	return out, nil
}

// MapLogits 直接映射调用方给出的 logits，不经过模型
func (uc *ClassifyUseCase) MapLogits(logits []float64, temperature *float64, topK *int) (*taxonomy.Result, error) {
	t, k := uc.params(temperature, topK)
	res, err := taxonomy.MapScores(logits, k, t)
	if stderrors.Is(err, taxonomy.ErrShape) {
		return nil, errors.BadRequest("SHAPE_ERROR", err.Error())
	}
	if stderrors.Is(err, taxonomy.ErrInvalidParameter) {
		return nil, errors.BadRequest("INVALID_PARAMETER", err.Error())
	}
	return res, err
}

func (uc *ClassifyUseCase) params(temperature *float64, topK *int) (float64, int) {
	t, k := uc.temperature, uc.topK
	if temperature != nil {
		t = *temperature
	}
	if topK != nil {
		k = *topK
	}
	return t, k
}

func (uc *ClassifyUseCase) logits(ctx context.Context, text string) ([]float64, error) {
	if v, ok := uc.cache.Get(text); ok {
		return v, nil
	}
	if err := uc.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	v, err := uc.scorer.Score(ctx, text)
	if err != nil {
		return nil, err
	}
	uc.cache.Add(text, v)
	return v, nil
}

func (uc *ClassifyUseCase) mapScores(logits []float64, temperature float64, topK int) (*taxonomy.Result, error) {
	res, err := taxonomy.MapScores(logits, topK, temperature)
	switch {
	case err == nil:
		return res, nil
	case stderrors.Is(err, taxonomy.ErrInvalidParameter):
		return nil, errors.BadRequest("INVALID_PARAMETER", err.Error())
	default:
		// 形状错误说明模型输出异常
		uc.log.Errorf("failed to map logits %v: %v", logits, err)
		return nil, errors.InternalServer("CLASSIFY_FAILED", err.Error())
	}
}

var articleBase = &url.URL{Scheme: "http", Host: "localhost", Path: "/"}

func extractText(html string) (string, error) {
	article, err := readability.FromReader(strings.NewReader(html), articleBase)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(article.TextContent), nil
}
