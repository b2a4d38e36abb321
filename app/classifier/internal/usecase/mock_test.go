package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/go-kratos/kratos/v2/errors"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/domain"
)

// mockRecordRepo 模拟分类历史仓库
type mockRecordRepo struct {
	mu      sync.Mutex
	records map[string]*domain.Record
	err     error
}

func newMockRecordRepo() *mockRecordRepo {
	return &mockRecordRepo{records: map[string]*domain.Record{}}
}

func (m *mockRecordRepo) ListRecords(ctx context.Context) ([]*domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockRecordRepo) GetRecords(ctx context.Context, ids []string) ([]*domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Record, 0, len(ids))
	for _, id := range ids {
		if r, ok := m.records[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRecordRepo) CreateRecord(ctx context.Context, r *domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records[r.ID] = r
	return nil
}

func (m *mockRecordRepo) DeleteRecord(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return errors.NotFound("RECORD_NOT_FOUND", "record not found")
	}
	delete(m.records, id)
	return nil
}

// mockRecordIndex 以子串匹配模拟全文索引
type mockRecordIndex struct {
	docs    map[string]string
	order   []string
	removed []string
}

func newMockRecordIndex() *mockRecordIndex {
	return &mockRecordIndex{docs: map[string]string{}}
}

func (m *mockRecordIndex) Index(r *domain.Record) error {
	if _, ok := m.docs[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	m.docs[r.ID] = strings.ToLower(r.Text + " " + r.Label)
	return nil
}

func (m *mockRecordIndex) Remove(id string) error {
	delete(m.docs, id)
	m.removed = append(m.removed, id)
	return nil
}

func (m *mockRecordIndex) Search(query string, limit int) ([]domain.RecordHit, error) {
	var hits []domain.RecordHit
	for _, id := range m.order {
		doc, ok := m.docs[id]
		if ok && strings.Contains(doc, strings.ToLower(query)) {
			hits = append(hits, domain.RecordHit{ID: id, Score: 1})
		}
		if len(hits) == limit {
			break
		}
	}
	return hits, nil
}

// mockScorer 模拟 FinBERT 推理
type mockScorer struct {
	mu     sync.Mutex
	ready  bool
	logits map[string][]float64
	err    error
	calls  int
}

func (m *mockScorer) Ready() bool  { return m.ready }
func (m *mockScorer) Name() string { return "mock/finbert" }

func (m *mockScorer) Score(ctx context.Context, text string) ([]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if v, ok := m.logits[text]; ok {
		return v, nil
	}
	return []float64{0, 0, 0}, nil
}
