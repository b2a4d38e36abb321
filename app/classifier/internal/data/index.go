package data

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/domain"
	"github.com/iWorld-y/fin_radar/app/classifier/internal/repo"
)

// recordDocument 写入 bleve 的文档结构
type recordDocument struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

type recordIndex struct {
	index bleve.Index
	log   *log.Helper
}

// NewRecordIndex 创建内存全文索引，并用仓库中已有记录重建
func NewRecordIndex(records repo.RecordRepo, logger log.Logger) (repo.RecordIndex, func(), error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create record index: %w", err)
	}
	ri := &recordIndex{index: index, log: log.NewHelper(logger)}

	existing, err := records.ListRecords(context.Background())
	if err != nil {
		index.Close()
		return nil, nil, fmt.Errorf("failed to load records for index: %w", err)
	}
	batch := index.NewBatch()
	for _, r := range existing {
		if err := batch.Index(r.ID, toDocument(r)); err != nil {
			index.Close()
			return nil, nil, err
		}
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return nil, nil, err
	}
	ri.log.Infof("record index rebuilt with %d records", len(existing))

	cleanup := func() {
		ri.log.Info("closing the record index")
		index.Close()
	}
	return ri, cleanup, nil
}

func toDocument(r *domain.Record) recordDocument {
	return recordDocument{Text: r.Text, Label: r.Label}
}

func (i *recordIndex) Index(r *domain.Record) error {
	return i.index.Index(r.ID, toDocument(r))
}

func (i *recordIndex) Remove(id string) error {
	return i.index.Delete(id)
}

func (i *recordIndex) Search(query string, limit int) ([]domain.RecordHit, error) {
	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), limit, 0, false)
	res, err := i.index.Search(req)
	if err != nil {
		return nil, err
	}

	hits := make([]domain.RecordHit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hits = append(hits, domain.RecordHit{ID: h.ID, Score: h.Score})
	}
	return hits, nil
}
