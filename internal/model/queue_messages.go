package model

// SubmissionNotificationMessage 提交完成后的通知任务消息
type SubmissionNotificationMessage struct {
	MessageID  string `json:"message_id"` // 消息唯一ID，用于幂等性检查
	Name       string `json:"name"`       // 提交者名字，用于邮件文案
	OccurredAt string `json:"occurred_at"`
}
