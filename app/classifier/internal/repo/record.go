package repo

import (
	"context"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/domain"
)

// RecordRepo 分类历史仓库接口
type RecordRepo interface {
	// ListRecords 按时间倒序列出全部记录
	ListRecords(ctx context.Context) ([]*domain.Record, error)
	// GetRecords 按给定 ID 顺序获取记录，不存在的 ID 被忽略
	GetRecords(ctx context.Context, ids []string) ([]*domain.Record, error)
	// CreateRecord 保存记录
	CreateRecord(ctx context.Context, r *domain.Record) error
	// DeleteRecord 删除记录，不存在时返回 NotFound
	DeleteRecord(ctx context.Context, id string) error
}

// RecordIndex 分类历史全文索引
type RecordIndex interface {
	Index(r *domain.Record) error
	Remove(id string) error
	Search(query string, limit int) ([]domain.RecordHit, error)
}
