package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/service"
)

const (
	OperationClassify     = "/classifier.v1.Classifier/Classify"
	OperationMap          = "/classifier.v1.Classifier/Map"
	OperationModel        = "/classifier.v1.Classifier/Model"
	OperationListRecords  = "/classifier.v1.Classifier/ListRecords"
	OperationAddRecord    = "/classifier.v1.Classifier/AddRecord"
	OperationDeleteRecord = "/classifier.v1.Classifier/DeleteRecord"
	OperationPing         = "/classifier.v1.Classifier/Ping"
	OperationRoot         = "/classifier.v1.Classifier/Root"
)

// RegisterClassifierHTTPServer 注册分类服务路由
func RegisterClassifierHTTPServer(srv *http.Server, s *service.ClassifierService) {
	r := srv.Route("/")
	r.GET("/", handle(OperationRoot, nil, s.Root))
	r.GET("/ping", handle(OperationPing, nil, s.Ping))
	r.GET("/api/model", handle(OperationModel, nil, s.Model))
	r.POST("/api/classify", handle(OperationClassify, bindClassify, s.Classify))
	r.POST("/api/map", handle(OperationMap, bindBody[service.MapRequest], s.Map))
	r.GET("/api/records", handle(OperationListRecords, bindQuery[service.ListRecordsRequest], s.ListRecords))
	r.POST("/api/records", handle(OperationAddRecord, bindBody[service.AddRecordRequest], s.AddRecord))
	r.DELETE("/api/records/{id}", handle(OperationDeleteRecord, bindVars[service.DeleteRecordRequest], s.DeleteRecord))
}

func handle[Req, Reply any](operation string, bind func(http.Context, *Req) error, call func(context.Context, *Req) (*Reply, error)) http.HandlerFunc {
	return func(ctx http.Context) error {
		var in Req
		if bind != nil {
			if err := bind(ctx, &in); err != nil {
				return err
			}
		}
		http.SetOperation(ctx, operation)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(ctx, req.(*Req))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func bindBody[Req any](ctx http.Context, in *Req) error {
	return ctx.Bind(in)
}

func bindQuery[Req any](ctx http.Context, in *Req) error {
	return ctx.BindQuery(in)
}

func bindVars[Req any](ctx http.Context, in *Req) error {
	return ctx.BindVars(in)
}

// 请求体携带文本，temperature/top_k/save 来自查询参数
func bindClassify(ctx http.Context, in *service.ClassifyRequest) error {
	if err := ctx.Bind(in); err != nil {
		return err
	}
	return ctx.BindQuery(&in.Params)
}
