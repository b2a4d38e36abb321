package taxonomy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// eventTypeWeights 把三维情绪 logits 扩展为六维事件类型伪 logits。
// 行: [Positive, Negative, Neutral]，列: eventTypes 的顺序。
// 负面情绪放大 market_volatility 与 risk_warning。
var eventTypeWeights = [SentimentDims][EventTypeDims]float64{
	// macro_policy, industry_trend, company_action, financial_report, market_volatility, risk_warning
	{1.1, 1.0, 1.3, 1.05, 0.9, 0.8},
	{0.9, 0.85, 0.7, 0.95, 1.25, 1.4},
	{1.0, 1.05, 1.0, 1.0, 1.0, 1.0},
}

// 初始化后只读
var expansion = newExpansion()

func newExpansion() mat.Matrix {
	data := make([]float64, 0, SentimentDims*EventTypeDims)
	for _, row := range eventTypeWeights {
		data = append(data, row[:]...)
	}
	return mat.NewDense(SentimentDims, EventTypeDims, data).T()
}

// EventTypeWeights 返回扩展权重矩阵的副本
func EventTypeWeights() [SentimentDims][EventTypeDims]float64 { return eventTypeWeights }

// Expand 在原始（未缩放）logit 空间做线性扩展: out[j] = Σ_i logits[i] * W[i][j]
func Expand(logits []float64) ([]float64, error) {
	if len(logits) != SentimentDims {
		return nil, fmt.Errorf("%w: expected %d sentiment logits [Positive, Negative, Neutral], got %d",
			ErrShape, SentimentDims, len(logits))
	}

	x := mat.NewVecDense(SentimentDims, append([]float64(nil), logits...))
	out := mat.NewVecDense(EventTypeDims, nil)
	out.MulVec(expansion, x)
	return out.RawVector().Data, nil
}
