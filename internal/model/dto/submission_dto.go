package dto

// SubmitRequest /api/submit 的请求体，字段与 Submission 一致，
// photo_urls / selfie_url 已经是上传完成后的公网地址
type SubmitRequest struct {
	FormTimestamp  string   `json:"form_timestamp"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	ShortDesc      string   `json:"short_desc"`
	Mood           string   `json:"mood"`
	Color          string   `json:"color"`
	Memory         string   `json:"memory"`
	Story          string   `json:"story"`
	Recommendation string   `json:"recommendation"`
	Message        string   `json:"message"`
	Date           string   `json:"date"`
	PhotoURLs      []string `json:"photo_urls"`
	SelfieURL      *string  `json:"selfie_url"`
}

// SubmitResponse 保持旧版接口的裸响应格式
type SubmitResponse struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UploadResponse /api/uploads 的响应
type UploadResponse struct {
	URL string `json:"url"`
}
