package model

// AuthProvider 账号来源
type AuthProvider string

const (
	AuthProviderEmail  AuthProvider = "email"
	AuthProviderGitHub AuthProvider = "github"
	AuthProviderGoogle AuthProvider = "google"
)

// User 用户模型，注册用户同时是通知邮件的收件人

type User struct {
	BaseModel
	PublicID     int64        `gorm:"uniqueIndex;not null" json:"public_id"`
	Email        string       `gorm:"uniqueIndex;type:varchar(255);not null" json:"email"`
	PasswordHash string       `gorm:"type:varchar(128);not null;default:''" json:"-"` // OAuth 用户为空
	DisplayName  string       `gorm:"type:varchar(64);not null;default:''" json:"display_name"`
	Provider     AuthProvider `gorm:"type:varchar(16);not null;default:'email'" json:"provider"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
