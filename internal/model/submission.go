package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MaxPhotosPerSubmission 每次提交的照片上限
const MaxPhotosPerSubmission = 5

// Submission 每月打卡记录，form_timestamp 是客户端生成的幂等键，
// 同 key 重复提交执行整行覆盖（upsert），不产生重复记录
type Submission struct {
	BaseModel
	FormTimestamp  string    `gorm:"uniqueIndex;type:varchar(40);not null" json:"form_timestamp"`
	Name           string    `gorm:"type:varchar(128);not null" json:"name"`
	Location       string    `gorm:"type:varchar(255);not null;default:''" json:"location"`
	ShortDesc      string    `gorm:"type:varchar(255);not null;default:''" json:"short_desc"`
	Mood           string    `gorm:"type:varchar(64);not null;default:''" json:"mood"`
	Color          string    `gorm:"type:varchar(64);not null;default:''" json:"color"`
	Memory         string    `gorm:"type:text;not null;default:''" json:"memory"`
	Story          string    `gorm:"type:text;not null;default:''" json:"story"`
	Recommendation string    `gorm:"type:text;not null;default:''" json:"recommendation"`
	Message        string    `gorm:"type:text;not null;default:''" json:"message"`
	Date           string    `gorm:"type:varchar(40);not null;default:''" json:"date"`
	PhotoURLs      PhotoURLs `gorm:"type:jsonb;default:'[]'" json:"photo_urls"`
	SelfieURL      *string   `gorm:"type:text" json:"selfie_url"`
}

// TableName 指定表名
func (Submission) TableName() string {
	return "submissions"
}

// PhotoURLs 照片地址数组（JSONB），顺序即展示顺序
type PhotoURLs []string

func (p PhotoURLs) Value() (driver.Value, error) {
	if p == nil {
		p = PhotoURLs{}
	}
	return json.Marshal(p)
}

func (p *PhotoURLs) Scan(value interface{}) error {
	if value == nil {
		*p = PhotoURLs{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported photo_urls column type: %T", value)
	}
}
