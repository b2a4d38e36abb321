package server

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/gorilla/handlers"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/conf"
	"github.com/iWorld-y/fin_radar/app/classifier/internal/service"
)

// DefaultCorsOrigins 前端开发服务器与同源页面
var DefaultCorsOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:8000",
	"http://127.0.0.1:8000",
}

// NewHTTPServer 创建分类服务的 HTTP Server
func NewHTTPServer(c *conf.Server, s *service.ClassifierService, logger log.Logger) *http.Server {
	helper := log.NewHelper(logger)

	origins := DefaultCorsOrigins
	if c != nil && c.Http != nil && len(c.Http.CorsOrigins) > 0 {
		origins = c.Http.CorsOrigins
	}

	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(recovery.WithHandler(func(ctx context.Context, req, err any) error {
				helper.Errorf("panic recovered: %v", err)
				return recovery.ErrUnknownRequest
			})),
		),
		// 过滤器包裹整个路由，预检请求不需要注册 OPTIONS 路由
		http.Filter(handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
			handlers.AllowCredentials(),
		)),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			} else {
				helper.Warnf("invalid http timeout %q: %v", c.Http.Timeout, err)
			}
		}
	}

	srv := http.NewServer(opts...)
	RegisterClassifierHTTPServer(srv, s)
	return srv
}
