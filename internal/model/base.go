package model

import "time"

// BaseModel 公共字段。created_at 同时是看板 feed 的排序键，
// 打卡记录不做软删除，重复提交走 form_timestamp 冲突更新
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}
