package dto

// DashboardEntry 看板上的一条提交
type DashboardEntry struct {
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

// DashboardGroup 按提交者分组后的条目
type DashboardGroup struct {
	Name    string           `json:"name"`
	Entries []DashboardEntry `json:"entries"`
}

// DashboardData 看板聚合结果：顶部轮播的照片流 + 按人分组
type DashboardData struct {
	Feed   []string         `json:"feed"`
	Groups []DashboardGroup `json:"groups"`
}
