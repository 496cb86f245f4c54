package dto

// NotifyRequest /api/notify 的请求体
type NotifyRequest struct {
	Name string `json:"name"`
}

// NotifyResponse 通知触发结果
type NotifyResponse struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}
