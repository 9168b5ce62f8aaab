package entity

import "time"

// User Clerk 用户同步表
// email 是去重键：同一邮箱最多一条记录，重复 upsert 覆盖可变字段
// 可选字段为 nil 时落库为 NULL，不写占位字符串
type User struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`                      // Clerk user_id
	Email     *string   `gorm:"size:255;uniqueIndex:idx_users_email" json:"email"` // ON CONFLICT 目标列
	FirstName *string   `gorm:"size:100" json:"first_name"`
	LastName  *string   `gorm:"size:100" json:"last_name"`
	AvatarURL *string   `gorm:"size:500" json:"avatar_url"`
	Phone     *string   `gorm:"size:32" json:"phone"`
	UpdatedAt time.Time `json:"updated_at"` // 写入时的服务端时间
}

// TableName 固定表名，cleardb 与 upsert 都依赖它
func (User) TableName() string {
	return "users"
}

// EmailOrEmpty 便于日志输出
func (u *User) EmailOrEmpty() string {
	if u == nil || u.Email == nil {
		return ""
	}
	return *u.Email
}
