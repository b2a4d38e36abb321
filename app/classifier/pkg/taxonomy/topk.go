package taxonomy

import (
	"cmp"
	"math"
	"slices"
)

// ScorePrecision 输出分数保留的小数位数
const ScorePrecision = 6

// TopKEntry 单个事件类型及其置信度
type TopKEntry struct {
	Label EventType `json:"label"`
	Score float64   `json:"score"`
}

// ClampTopK 把 k 限制在 [1, EventTypeDims]
func ClampTopK(k int) int {
	return max(1, min(k, EventTypeDims))
}

// TopK 返回按概率降序排列的前 k 个事件类型。
// 排序是稳定的，同分时保持固定标签顺序；舍入只作用于输出分数，不参与排序比较。
func TopK(q []float64, k int) []TopKEntry {
	k = min(ClampTopK(k), len(q))

	idx := make([]int, len(q))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(q[b], q[a])
	})

	entries := make([]TopKEntry, 0, k)
	for _, i := range idx[:k] {
		entries = append(entries, TopKEntry{
			Label: eventTypes[i],
			Score: roundScore(q[i]),
		})
	}
	return entries
}

func roundScore(v float64) float64 {
	scale := math.Pow10(ScorePrecision)
	return math.Round(v*scale) / scale
}
