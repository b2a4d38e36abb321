package data

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/domain"
	"github.com/iWorld-y/fin_radar/app/classifier/internal/repo"
)

type recordRepo struct {
	data *Data
	log  *log.Helper
}

func NewRecordRepo(data *Data, logger log.Logger) repo.RecordRepo {
	return &recordRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *recordRepo) ListRecords(ctx context.Context) ([]*domain.Record, error) {
	rows, err := r.data.db.QueryContext(ctx, `
		SELECT id, text, label, confidence, created_at
		FROM classification_records
		ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *recordRepo) GetRecords(ctx context.Context, ids []string) ([]*domain.Record, error) {
	if len(ids) == 0 {
		return []*domain.Record{}, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.data.db.QueryContext(ctx, `
		SELECT id, text, label, confidence, created_at
		FROM classification_records
		WHERE id IN (`+r.data.binds(len(ids))+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]*domain.Record, len(ids))
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		byID[rec.ID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	records := make([]*domain.Record, 0, len(byID))
	for _, id := range ids {
		if rec, ok := byID[id]; ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (r *recordRepo) CreateRecord(ctx context.Context, rec *domain.Record) error {
	_, err := r.data.db.ExecContext(ctx, `
		INSERT INTO classification_records (id, text, label, confidence, created_at)
		VALUES (`+r.data.binds(5)+`)`,
		rec.ID, rec.Text, rec.Label, rec.Confidence, rec.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

func (r *recordRepo) DeleteRecord(ctx context.Context, id string) error {
	res, err := r.data.db.ExecContext(ctx, `DELETE FROM classification_records WHERE id = `+r.data.bind(1), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.NotFound("RECORD_NOT_FOUND", "record not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*domain.Record, error) {
	var (
		rec       domain.Record
		createdAt int64
	)
	if err := s.Scan(&rec.ID, &rec.Text, &rec.Label, &rec.Confidence, &createdAt); err != nil {
		return nil, err
	}
	rec.CreatedAt = time.Unix(0, createdAt)
	return &rec, nil
}
