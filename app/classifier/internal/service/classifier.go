package service

import (
	"context"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/domain"
	"github.com/iWorld-y/fin_radar/app/classifier/internal/usecase"
	"github.com/iWorld-y/fin_radar/app/classifier/pkg/taxonomy"
)

// Banner 根路径返回的服务说明
const Banner = "Financial news classifier: POST /api/classify"

type ClassifierService struct {
	ucClassify *usecase.ClassifyUseCase
	ucRecord   *usecase.RecordUseCase
	log        *log.Helper
}

func NewClassifierService(ucClassify *usecase.ClassifyUseCase, ucRecord *usecase.RecordUseCase, logger log.Logger) *ClassifierService {
	return &ClassifierService{
		ucClassify: ucClassify,
		ucRecord:   ucRecord,
		log:        log.NewHelper(logger),
	}
}

func (s *ClassifierService) Classify(ctx context.Context, req *ClassifyRequest) (*ClassifyReply, error) {
	out, err := s.ucClassify.Classify(ctx, &domain.ClassifyInput{
		Text:        req.Text,
		HTML:        req.HTML,
		Temperature: req.Params.Temperature,
		TopK:        req.Params.TopK,
		Save:        req.Params.Save,
	})
	if err != nil {
		return nil, err
	}

	reply := &ClassifyReply{
		Input:  out.Text,
		Result: out.Result.Classification,
		TopK:   out.Result.TopK,
	}
	if out.Record != nil {
		reply.RecordID = out.Record.ID
	}
	return reply, nil
}

func (s *ClassifierService) Map(ctx context.Context, req *MapRequest) (*taxonomy.Result, error) {
	return s.ucClassify.MapLogits(req.Logits, req.Temperature, req.TopK)
}

func (s *ClassifierService) Model(ctx context.Context, _ *struct{}) (*ModelReply, error) {
	return &ModelReply{
		Ready: s.ucClassify.ModelReady(),
		Model: s.ucClassify.ModelName(),
	}, nil
}

func (s *ClassifierService) ListRecords(ctx context.Context, req *ListRecordsRequest) (*RecordList, error) {
	var (
		records []*domain.Record
		err     error
	)
	if q := strings.TrimSpace(req.Q); q != "" {
		records, err = s.ucRecord.Search(ctx, q, req.Limit)
	} else {
		records, err = s.ucRecord.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	list := make(RecordList, 0, len(records))
	for _, r := range records {
		list = append(list, toRecordReply(r))
	}
	return &list, nil
}

func (s *ClassifierService) AddRecord(ctx context.Context, req *AddRecordRequest) (*RecordReply, error) {
	r, err := s.ucRecord.Add(ctx, &domain.Record{
		Text:       req.Text,
		Label:      req.Label,
		Confidence: req.Confidence,
	})
	if err != nil {
		return nil, err
	}
	return toRecordReply(r), nil
}

func (s *ClassifierService) DeleteRecord(ctx context.Context, req *DeleteRecordRequest) (*StatusReply, error) {
	if err := s.ucRecord.Delete(ctx, req.ID); err != nil {
		return nil, err
	}
	return &StatusReply{Status: "success", Message: "Record deleted"}, nil
}

func (s *ClassifierService) Ping(ctx context.Context, _ *struct{}) (*StatusReply, error) {
	return &StatusReply{Status: "ok", Message: "pong"}, nil
}

func (s *ClassifierService) Root(ctx context.Context, _ *struct{}) (*StatusReply, error) {
	return &StatusReply{Status: "ok", Message: Banner}, nil
}
