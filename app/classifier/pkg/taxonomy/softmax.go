package taxonomy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SoftmaxWithTemperature 对 values 做温度缩放后的数值稳定 softmax。
//
// 先减去最大值再除以温度并取指数，避免大幅值 logits 溢出。
// temperature 越大分布越平坦，趋近 0 时趋向 argmax 处的 one-hot，等于 1 时即标准 softmax。
func SoftmaxWithTemperature(values []float64, temperature float64) ([]float64, error) {
	if !(temperature > 0) {
		return nil, fmt.Errorf("%w: temperature must be > 0, got %v", ErrInvalidParameter, temperature)
	}
	if len(values) == 0 {
		return []float64{}, nil
	}

	m := floats.Max(values)
	switch {
	case math.IsInf(m, 1):
		// 溢出的分量平分全部概率
		return splitAmong(values, func(v float64) bool { return math.IsInf(v, 1) }), nil
	case math.IsInf(m, -1):
		return splitAmong(values, func(float64) bool { return true }), nil
	}

	probs := make([]float64, len(values))
	for i, v := range values {
		probs[i] = math.Exp((v - m) / temperature)
	}
	sum := floats.Sum(probs)
	for i := range probs {
		probs[i] /= sum
	}
	return probs, nil
}

func splitAmong(values []float64, hit func(float64) bool) []float64 {
	probs := make([]float64, len(values))
	n := 0
	for _, v := range values {
		if hit(v) {
			n++
		}
	}
	for i, v := range values {
		if hit(v) {
			probs[i] = 1 / float64(n)
		}
	}
	return probs
}

// Entropy 返回概率分布的香农熵（自然对数）
func Entropy(p []float64) float64 {
	return stat.Entropy(p)
}
