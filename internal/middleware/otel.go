package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"MonthlyMasti/pkg/metrics"
)

// toValidUTF8 清洗用户可控字符串，非法 UTF-8 会让指标/trace 序列化失败
func toValidUTF8(val string) string {
	return strings.ToValidUTF8(val, "")
}

// OpenTelemetryMiddleware 为每个请求开 Span 并上报 HTTP 指标，
// 指标实例走 pkg/metrics 的全局集合，未初始化时静默跳过
func OpenTelemetryMiddleware() app.HandlerFunc {
	tracer := otel.Tracer("monthlymasti-server")

	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		metrics.AddHTTPInflight(ctx, 1)
		defer metrics.AddHTTPInflight(ctx, -1)

		method := toValidUTF8(string(c.Method()))
		route := toValidUTF8(string(c.Path()))

		spanCtx, span := tracer.Start(ctx, method+" "+route, trace.WithAttributes(
			semconv.HTTPMethod(method),
			semconv.HTTPRoute(route),
			semconv.HTTPURL(toValidUTF8(c.Request.URI().String())),
			attribute.String("http.host", toValidUTF8(string(c.Host()))),
			attribute.String("http.user_agent", toValidUTF8(string(c.UserAgent()))),
		))
		defer span.End()

		if userID, exists := GetUserID(ctx, c); exists {
			span.SetAttributes(attribute.String("enduser.id", toValidUTF8(userID)))
		}
		if requestID := c.GetHeader("X-Request-Id"); len(requestID) > 0 {
			span.SetAttributes(attribute.String("http.request_id", toValidUTF8(string(requestID))))
		}

		c.Next(spanCtx)

		status := int(c.Response.StatusCode())
		span.SetAttributes(semconv.HTTPStatusCode(status))

		if status >= 400 {
			span.SetStatus(codes.Error, "HTTP error")
			if status >= 500 {
				if lastErr := c.Errors.Last(); lastErr != nil {
					span.RecordError(lastErr)
				}
			}
		} else {
			span.SetStatus(codes.Ok, "HTTP success")
		}

		metrics.RecordHTTPRequest(ctx, method, route, status, time.Since(start).Seconds())
	}
}

// NewServerTracerConfig 创建 Hertz Server 的追踪配置
func NewServerTracerConfig(opts ...hertztracing.Option) (config.Option, app.HandlerFunc) {
	tracer, cfg := hertztracing.NewServerTracer(opts...)
	return tracer, hertztracing.ServerMiddleware(cfg)
}
