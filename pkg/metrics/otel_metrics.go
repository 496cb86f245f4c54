package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetrics OpenTelemetry 指标集合
type OTelMetrics struct {
	// 提交相关指标
	SubmissionTotal    metric.Int64Counter
	SubmissionDuration metric.Float64Histogram
	UploadTotal        metric.Int64Counter
	UploadBytes        metric.Int64Counter

	// 邮件通知相关指标
	EmailSentTotal    metric.Int64Counter
	EmailSendDuration metric.Float64Histogram
	NotifyQueueLength metric.Int64UpDownCounter

	// HTTP 相关指标
	HTTPServerRequestTotal   metric.Int64Counter
	HTTPServerDuration       metric.Float64Histogram
	HTTPServerActiveRequests metric.Int64UpDownCounter
}

var (
	// 全局指标实例
	metrics *OTelMetrics
	// meter 用于创建指标
	meter = otel.Meter("monthlymasti")
)

// InitMetrics 初始化 OpenTelemetry 指标
func InitMetrics() error {
	var err error

	metrics = &OTelMetrics{}

	metrics.SubmissionTotal, err = meter.Int64Counter(
		"submission_total",
		metric.WithDescription("Total number of check-in submissions received"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return err
	}

	metrics.SubmissionDuration, err = meter.Float64Histogram(
		"submission_store_duration_seconds",
		metric.WithDescription("Time spent storing a submission in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	metrics.UploadTotal, err = meter.Int64Counter(
		"upload_total",
		metric.WithDescription("Total number of media uploads"),
		metric.WithUnit("{upload}"),
	)
	if err != nil {
		return err
	}

	metrics.UploadBytes, err = meter.Int64Counter(
		"upload_bytes_total",
		metric.WithDescription("Total bytes of uploaded media"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return err
	}

	metrics.EmailSentTotal, err = meter.Int64Counter(
		"email_sent_total",
		metric.WithDescription("Total number of notification emails sent"),
		metric.WithUnit("{email}"),
	)
	if err != nil {
		return err
	}

	metrics.EmailSendDuration, err = meter.Float64Histogram(
		"email_send_duration_seconds",
		metric.WithDescription("Time spent sending a notification email in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	metrics.NotifyQueueLength, err = meter.Int64UpDownCounter(
		"notify_queue_length",
		metric.WithDescription("Number of messages in the notification queue"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return err
	}

	metrics.HTTPServerRequestTotal, err = meter.Int64Counter(
		"http_server_request_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return err
	}

	metrics.HTTPServerDuration, err = meter.Float64Histogram(
		"http_server_duration_seconds",
		metric.WithDescription("HTTP request handling duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	metrics.HTTPServerActiveRequests, err = meter.Int64UpDownCounter(
		"http_server_active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return err
	}

	return nil
}

// GetMetrics 获取全局指标实例
func GetMetrics() *OTelMetrics {
	return metrics
}

// RecordSubmission 记录一次提交
func (m *OTelMetrics) RecordSubmission(ctx context.Context, status string, duration float64) {
	m.SubmissionTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", status),
	))
	m.SubmissionDuration.Record(ctx, duration, metric.WithAttributes(
		attribute.String("status", status),
	))
}

// RecordUpload 记录一次媒体上传
func (m *OTelMetrics) RecordUpload(ctx context.Context, kind, status string, sizeBytes int64) {
	m.UploadTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("status", status),
	))
	if sizeBytes > 0 {
		m.UploadBytes.Add(ctx, sizeBytes, metric.WithAttributes(
			attribute.String("kind", kind),
		))
	}
}

// RecordEmailSent 记录邮件发送结果
func (m *OTelMetrics) RecordEmailSent(ctx context.Context, provider, status string, duration float64) {
	m.EmailSentTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("status", status),
	))
	m.EmailSendDuration.Record(ctx, duration, metric.WithAttributes(
		attribute.String("provider", provider),
	))
}

// RecordHTTPRequest 记录一次 HTTP 请求
func (m *OTelMetrics) RecordHTTPRequest(ctx context.Context, method, route string, status int, duration float64) {
	labels := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status", status),
	)
	m.HTTPServerRequestTotal.Add(ctx, 1, labels)
	m.HTTPServerDuration.Record(ctx, duration, labels)
}

// AddHTTPInflight 调整在途请求计数
func (m *OTelMetrics) AddHTTPInflight(ctx context.Context, delta int64) {
	m.HTTPServerActiveRequests.Add(ctx, delta)
}

// UpdateNotifyQueueLength 调整通知队列长度
func (m *OTelMetrics) UpdateNotifyQueueLength(ctx context.Context, queueName string, delta int64) {
	m.NotifyQueueLength.Add(ctx, delta, metric.WithAttributes(
		attribute.String("queue_name", queueName),
	))
}
