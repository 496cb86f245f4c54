package session

import (
	"context"
	"sync"

	"MonthlyMasti/internal/model/dto"
)

// API 会话管理依赖的认证接口，由 api client 实现
type API interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthTokenResponse, error)
	SignIn(ctx context.Context, req dto.SignInRequest) (*dto.AuthTokenResponse, error)
	OAuthURL(ctx context.Context, provider string) (string, error)
	SignOut(ctx context.Context) error
}

// Listener 会话状态变化回调
type Listener func()

// Manager 客户端会话状态。依赖注入，不做包级单例
type Manager struct {
	api API

	mu        sync.RWMutex
	user      *dto.AuthUserSnapshot
	loading   bool
	listeners map[int]Listener
	nextID    int
}

func NewManager(api API) *Manager {
	return &Manager{
		api:       api,
		listeners: make(map[int]Listener),
	}
}

// CurrentUser 当前登录用户，未登录返回 nil
func (m *Manager) CurrentUser() *dto.AuthUserSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// IsLoading 是否有认证操作进行中
func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Subscribe 注册状态变化监听，返回取消函数
func (m *Manager) Subscribe(l Listener) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// SignUp 注册并登录
func (m *Manager) SignUp(ctx context.Context, email, password, displayName string) error {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.api.SignUp(ctx, dto.SignUpRequest{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	})
	if err != nil {
		return err
	}

	m.setUser(&resp.User)
	return nil
}

// SignIn 邮箱登录
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.api.SignIn(ctx, dto.SignInRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	m.setUser(&resp.User)
	return nil
}

// SignInWithProvider 获取第三方授权跳转地址，
// 实际登录在回调完成后由服务端返回 token
func (m *Manager) SignInWithProvider(ctx context.Context, provider string) (string, error) {
	m.setLoading(true)
	defer m.setLoading(false)

	return m.api.OAuthURL(ctx, provider)
}

// SignOut 注销并清空本地状态
func (m *Manager) SignOut(ctx context.Context) error {
	m.setLoading(true)
	defer m.setLoading(false)

	if err := m.api.SignOut(ctx); err != nil {
		return err
	}

	m.setUser(nil)
	return nil
}

func (m *Manager) setLoading(loading bool) {
	m.mu.Lock()
	m.loading = loading
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) setUser(user *dto.AuthUserSnapshot) {
	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) notify() {
	m.mu.RLock()
	ls := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		ls = append(ls, l)
	}
	m.mu.RUnlock()

	for _, l := range ls {
		l()
	}
}
