package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/data"
	"github.com/iWorld-y/fin_radar/app/classifier/internal/service"
	"github.com/iWorld-y/fin_radar/app/classifier/internal/usecase"
	"github.com/iWorld-y/fin_radar/app/classifier/pkg/finbert"
)

// ProviderSet 是分类服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,
	NewScorer,
	wire.Bind(new(usecase.SentimentScorer), new(*finbert.Scorer)),

	// Data providers
	data.NewData,
	data.NewRecordRepo,
	data.NewRecordIndex,

	// UseCase providers
	usecase.NewRecordUseCase,
	usecase.NewClassifyUseCase,

	// Service providers
	service.NewClassifierService,
)
