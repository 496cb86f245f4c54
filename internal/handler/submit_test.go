package handler

import (
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitEngine() *server.Hertz {
	h := server.Default()
	h.Any("/api/submit", Submit)
	return h
}

func TestSubmitRejectsNonPost(t *testing.T) {
	h := submitEngine()

	w := ut.PerformRequest(h.Engine, "GET", "/api/submit", nil)
	resp := w.Result()

	assert.Equal(t, 405, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "Method not allowed")
}

func TestSubmitRejectsMalformedJSON(t *testing.T) {
	h := submitEngine()

	w := ut.PerformRequest(h.Engine, "POST", "/api/submit",
		&ut.Body{Body: strings.NewReader("{not json"), Len: 9},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
	resp := w.Result()

	assert.Equal(t, 400, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "Invalid request body")
}

func TestSubmitRequiresName(t *testing.T) {
	h := submitEngine()

	body := `{"form_timestamp":"2025-07-14T10:30:00.000Z","name":""}`
	w := ut.PerformRequest(h.Engine, "POST", "/api/submit",
		&ut.Body{Body: strings.NewReader(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
	resp := w.Result()

	assert.Equal(t, 400, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "Name is required")
}

func TestSubmitRejectsTooManyPhotos(t *testing.T) {
	h := submitEngine()

	body := `{"name":"Priya","photo_urls":["1","2","3","4","5","6"]}`
	w := ut.PerformRequest(h.Engine, "POST", "/api/submit",
		&ut.Body{Body: strings.NewReader(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
	resp := w.Result()

	require.Equal(t, 400, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "Too many photos")
}
