package utils

import (
	"strings"
	"time"
)

// iso8601Millis 对齐浏览器 Date.toISOString() 的格式，毫秒精度 + Z 后缀
const iso8601Millis = "2006-01-02T15:04:05.000Z"

// ISOTimestamp 生成提交使用的 ISO-8601 时间戳（UTC）
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(iso8601Millis)
}

// DatePart 截取 ISO 时间戳中的日期部分（T 之前）
func DatePart(timestamp string) string {
	if i := strings.IndexByte(timestamp, 'T'); i >= 0 {
		return timestamp[:i]
	}
	return timestamp
}
