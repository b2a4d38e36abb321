package taxonomy

import (
	"fmt"
	"math"
)

const (
	DefaultTopK        = 5
	DefaultTemperature = 1.2
)

// Classification 四大分类块
type Classification struct {
	MarketDirection MarketDirection `json:"market_direction"`
	EventType       EventType       `json:"event_type"`
	ImpactStrength  ImpactStrength  `json:"impact_strength"`
	RiskSignal      RiskSignal      `json:"risk_signal"`
}

// Result 一次映射的完整输出
type Result struct {
	Classification Classification `json:"classification"`
	TopK           []TopKEntry    `json:"top_k"`
}

// MapScores 把 FinBERT 原始 logits [Positive, Negative, Neutral] 映射到固定分类体系。
//
// 情绪分支与事件类型分支各自做一次温度缩放 softmax，互不共享中间结果；
// 事件类型分支作用于原始 logits 的线性扩展，而不是情绪概率。
// 出错时不返回任何部分结果。
func MapScores(logits []float64, topK int, temperature float64) (*Result, error) {
	if len(logits) != SentimentDims {
		return nil, fmt.Errorf("%w: expected %d sentiment logits [Positive, Negative, Neutral], got %d",
			ErrShape, SentimentDims, len(logits))
	}
	if !(temperature > 0) {
		return nil, fmt.Errorf("%w: temperature must be > 0, got %v", ErrInvalidParameter, temperature)
	}
	for i, v := range logits {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: logit %d is not finite (%v)", ErrInvalidParameter, i, v)
		}
	}

	sentimentProbs, err := SoftmaxWithTemperature(logits, temperature)
	if err != nil {
		return nil, err
	}

	expanded, err := Expand(logits)
	if err != nil {
		return nil, err
	}
	eventProbs, err := SoftmaxWithTemperature(expanded, temperature)
	if err != nil {
		return nil, err
	}

	s := newSentiment(sentimentProbs)
	return &Result{
		Classification: Classification{
			MarketDirection: s.direction,
			EventType:       eventType(eventProbs),
			ImpactStrength:  impactStrength(sentimentProbs),
			RiskSignal:      riskSignal(s),
		},
		TopK: TopK(eventProbs, topK),
	}, nil
}
