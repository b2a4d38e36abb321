package service

import (
	"time"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/domain"
	"github.com/iWorld-y/fin_radar/app/classifier/pkg/taxonomy"
)

// ClassifyRequest 分类请求体，查询参数放在 Params
type ClassifyRequest struct {
	Text   string         `json:"text"`
	HTML   string         `json:"html,omitempty"`
	Params ClassifyParams `json:"-"`
}

// ClassifyParams 分类查询参数
type ClassifyParams struct {
	Temperature *float64 `json:"temperature"`
	TopK        *int     `json:"top_k"`
	Save        bool     `json:"save"`
}

type ClassifyReply struct {
	Input    string                  `json:"input"`
	Result   taxonomy.Classification `json:"result"`
	TopK     []taxonomy.TopKEntry    `json:"top_k"`
	RecordID string                  `json:"record_id,omitempty"`
}

type MapRequest struct {
	Logits      []float64 `json:"logits"`
	Temperature *float64  `json:"temperature,omitempty"`
	TopK        *int      `json:"top_k,omitempty"`
}

type ModelReply struct {
	Ready bool   `json:"ready"`
	Model string `json:"model"`
}

type ListRecordsRequest struct {
	Q     string `json:"q"`
	Limit int    `json:"limit"`
}

type RecordReply struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// RecordList 以 JSON 数组返回
type RecordList []*RecordReply

type AddRecordRequest struct {
	Text       string  `json:"text"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

type DeleteRecordRequest struct {
	ID string `json:"id"`
}

// StatusReply 通用状态响应
type StatusReply struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func toRecordReply(r *domain.Record) *RecordReply {
	return &RecordReply{
		ID:         r.ID,
		Text:       r.Text,
		Label:      r.Label,
		Confidence: r.Confidence,
		Timestamp:  r.CreatedAt,
	}
}
