package metrics

import (
	"context"
)

// RecordSubmission 记录提交结果，指标未初始化时静默跳过
func RecordSubmission(status string, duration float64) {
	if m := GetMetrics(); m != nil {
		m.RecordSubmission(context.Background(), status, duration)
	}
}

// RecordUpload 记录媒体上传
func RecordUpload(kind, status string, sizeBytes int64) {
	if m := GetMetrics(); m != nil {
		m.RecordUpload(context.Background(), kind, status, sizeBytes)
	}
}

// RecordEmailSent 记录邮件发送
func RecordEmailSent(provider, status string, duration float64) {
	if m := GetMetrics(); m != nil {
		m.RecordEmailSent(context.Background(), provider, status, duration)
	}
}

// RecordHTTPRequest 记录一次 HTTP 请求
func RecordHTTPRequest(ctx context.Context, method, route string, status int, duration float64) {
	if m := GetMetrics(); m != nil {
		m.RecordHTTPRequest(ctx, method, route, status, duration)
	}
}

// AddHTTPInflight 调整在途请求计数
func AddHTTPInflight(ctx context.Context, delta int64) {
	if m := GetMetrics(); m != nil {
		m.AddHTTPInflight(ctx, delta)
	}
}

// UpdateNotifyQueueLength 调整通知队列长度
func UpdateNotifyQueueLength(queueName string, delta int64) {
	if m := GetMetrics(); m != nil {
		m.UpdateNotifyQueueLength(context.Background(), queueName, delta)
	}
}
