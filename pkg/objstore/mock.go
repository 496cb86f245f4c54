package objstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// MockClient 内存对象存储实现（测试用）
type MockClient struct {
	mu       sync.Mutex
	Objects  map[string][]byte
	FailNext bool
	FailFor  map[string]bool
}

func NewMockClient() *MockClient {
	return &MockClient{
		Objects: make(map[string][]byte),
		FailFor: make(map[string]bool),
	}
}

func (m *MockClient) Upload(_ context.Context, path string, body io.Reader, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailNext {
		m.FailNext = false
		return fmt.Errorf("mock upload failure for %s", path)
	}
	if m.FailFor[path] {
		return fmt.Errorf("mock upload failure for %s", path)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.Objects[path] = data
	return nil
}

func (m *MockClient) PublicURL(path string) string {
	return "https://storage.test/" + strings.TrimLeft(path, "/")
}

// Paths 返回已上传对象的路径集合
func (m *MockClient) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	paths := make([]string, 0, len(m.Objects))
	for p := range m.Objects {
		paths = append(paths, p)
	}
	return paths
}
