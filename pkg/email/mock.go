package email

import (
	"context"
	"errors"
	"sync"
)

type MockCall struct {
	To      string
	Subject string
	Text    string
}

// MockClient 可配置的邮件客户端 mock，实现 Client 接口
type MockClient struct {
	mu    sync.Mutex
	Calls []MockCall

	// FailNext 置为 true 时，下一次调用返回 mock 错误并自动复位
	FailNext bool

	// FailFor 中列出的收件人每次都失败，用于单个收件人失败的场景
	FailFor map[string]bool
}

func NewMockClient() *MockClient {
	return &MockClient{
		Calls:   make([]MockCall, 0),
		FailFor: make(map[string]bool),
	}
}

func (m *MockClient) Send(ctx context.Context, to, subject, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{
		To:      to,
		Subject: subject,
		Text:    text,
	})

	if m.FailNext {
		m.FailNext = false
		return errors.New("mock email send failure")
	}

	if m.FailFor[to] {
		return errors.New("mock email send failure for " + to)
	}

	return nil
}

// SentTo 返回实际送达（未失败）的收件人列表
func (m *MockClient) SentTo() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for _, call := range m.Calls {
		if !m.FailFor[call.To] {
			out = append(out, call.To)
		}
	}
	return out
}
