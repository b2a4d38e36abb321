package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/domain"
	"github.com/iWorld-y/fin_radar/app/classifier/internal/repo"
)

// DefaultSearchLimit 全文检索默认返回条数
const DefaultSearchLimit = 20

// RecordUseCase 分类历史业务逻辑
type RecordUseCase struct {
	repo  repo.RecordRepo
	index repo.RecordIndex
	log   *log.Helper

	now   func() time.Time
	newID func() string
}

// NewRecordUseCase 创建分类历史业务逻辑实例
func NewRecordUseCase(repo repo.RecordRepo, index repo.RecordIndex, logger log.Logger) *RecordUseCase {
	return &RecordUseCase{
		repo:  repo,
		index: index,
		log:   log.NewHelper(logger),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// List 列出全部记录，最新在前
func (uc *RecordUseCase) List(ctx context.Context) ([]*domain.Record, error) {
	return uc.repo.ListRecords(ctx)
}

// Search 全文检索记录，按相关度排序
func (uc *RecordUseCase) Search(ctx context.Context, query string, limit int) ([]*domain.Record, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	hits, err := uc.index.Search(query, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.ID)
	}
	return uc.repo.GetRecords(ctx, ids)
}

// Add 保存一条新记录，ID 与时间戳由服务端生成
func (uc *RecordUseCase) Add(ctx context.Context, r *domain.Record) (*domain.Record, error) {
	if strings.TrimSpace(r.Text) == "" || strings.TrimSpace(r.Label) == "" {
		return nil, errors.BadRequest("INVALID_RECORD", "text and label are required")
	}
	if !(r.Confidence >= 0 && r.Confidence <= 1) {
		return nil, errors.BadRequest("INVALID_RECORD", "confidence must be within [0, 1]")
	}

	rec := &domain.Record{
		ID:         uc.newID(),
		Text:       r.Text,
		Label:      r.Label,
		Confidence: r.Confidence,
		CreatedAt:  uc.now(),
	}
	if err := uc.repo.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}
	// 索引失败不影响记录保存
	if err := uc.index.Index(rec); err != nil {
		uc.log.Warnf("failed to index record %s: %v", rec.ID, err)
	}
	return rec, nil
}

// Delete 删除记录
func (uc *RecordUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteRecord(ctx, id); err != nil {
		return err
	}
	if err := uc.index.Remove(id); err != nil {
		uc.log.Warnf("failed to remove record %s from index: %v", id, err)
	}
	return nil
}
