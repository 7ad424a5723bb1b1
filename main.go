package main

import (
	"class-hub/biz/adaptor"
	"class-hub/biz/infrastructure/util/log"
	"class-hub/provider"
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/google/uuid"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
)

func main() {
	provider.Init()
	c := provider.Get().Config

	otel.SetTextMapPropagator(b3.New())

	tracer, tracerCfg := hertztracing.NewServerTracer()
	h := server.New(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(tracerCfg))
	h.Use(requestContext())

	customizedRegister(h)

	log.Info("class-hub listening on %s", c.ListenOn)
	h.Spin()
}

// requestContext 注入hertz上下文, 并为每个请求分配请求id
func requestContext() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		requestId := string(c.GetHeader("X-Request-Id"))
		if requestId == "" {
			requestId = uuid.New().String()
		}
		c.Header("X-Request-Id", requestId)

		ctx = adaptor.InjectContext(ctx, c)
		c.Next(ctx)
	}
}
