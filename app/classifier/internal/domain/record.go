package domain

import "time"

// Record 分类历史记录
type Record struct {
	ID         string
	Text       string
	Label      string
	Confidence float64
	CreatedAt  time.Time
}

// RecordHit 全文检索命中
type RecordHit struct {
	ID    string
	Score float64
}
