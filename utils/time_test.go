package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISOTimestamp(t *testing.T) {
	ts := time.Date(2025, 7, 14, 10, 30, 0, 123*1e6, time.FixedZone("IST", 5*3600+1800))

	// 总是转成 UTC，毫秒精度
	assert.Equal(t, "2025-07-14T05:00:00.123Z", ISOTimestamp(ts))
}

func TestDatePart(t *testing.T) {
	assert.Equal(t, "2025-07-14", DatePart("2025-07-14T10:30:00.000Z"))
	assert.Equal(t, "2025-07-14", DatePart("2025-07-14"))
	assert.Equal(t, "", DatePart(""))
}
