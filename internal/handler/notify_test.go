package handler

import (
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
)

func notifyEngine() *server.Hertz {
	h := server.Default()
	h.Any("/api/notify", Notify)
	return h
}

func TestNotifyRejectsNonPost(t *testing.T) {
	h := notifyEngine()

	w := ut.PerformRequest(h.Engine, "GET", "/api/notify", nil)
	resp := w.Result()

	assert.Equal(t, 405, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "Method not allowed")
}

func TestNotifyRequiresJSONContentType(t *testing.T) {
	h := notifyEngine()

	body := `name=Priya`
	w := ut.PerformRequest(h.Engine, "POST", "/api/notify",
		&ut.Body{Body: strings.NewReader(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: "application/x-www-form-urlencoded"},
	)
	resp := w.Result()

	assert.Equal(t, 400, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "Content-Type")
}

func TestNotifyRejectsMalformedJSON(t *testing.T) {
	h := notifyEngine()

	body := `{broken`
	w := ut.PerformRequest(h.Engine, "POST", "/api/notify",
		&ut.Body{Body: strings.NewReader(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
	resp := w.Result()

	assert.Equal(t, 400, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "Invalid request body")
}
