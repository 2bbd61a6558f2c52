package main

import (
	"context"

	"github.com/mdtousif1712-create/prodigy-ai/biz/adaptor"
	"github.com/mdtousif1712-create/prodigy-ai/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
)

func main() {
	provider.Init()
	c := provider.Get().Config

	tracer, cfg := hertztracing.NewServerTracer()
	h := server.Default(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(c.MetricsListenOn, "/metrics")),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(cfg))

	// 把hertz请求上下文放进ctx, 供鉴权和日志使用
	h.Use(func(ctx context.Context, rc *app.RequestContext) {
		ctx = adaptor.InjectContext(ctx, rc)
		rc.Next(ctx)
	})

	customizedRegister(h)
	h.Spin()
}
