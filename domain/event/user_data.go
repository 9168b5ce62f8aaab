package event

import (
	"strings"
	"time"

	"clerk-user-sync/domain/entity"
)

// UserData Clerk 用户数据结构（只取同步需要的字段）
type UserData struct {
	ID             string         `json:"id"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
	PhoneNumbers   []PhoneNumber  `json:"phone_numbers"`
	FirstName      *string        `json:"first_name"`
	LastName       *string        `json:"last_name"`
	ImageURL       *string        `json:"image_url"`
}

type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

type PhoneNumber struct {
	PhoneNumber string `json:"phone_number"`
}

// PrimaryEmail 取第一个邮箱，没有则返回 nil
func (d UserData) PrimaryEmail() *string {
	if len(d.EmailAddresses) == 0 {
		return nil
	}
	return optional(&d.EmailAddresses[0].EmailAddress)
}

// PrimaryPhone 取第一个手机号，规则同邮箱
func (d UserData) PrimaryPhone() *string {
	if len(d.PhoneNumbers) == 0 {
		return nil
	}
	return optional(&d.PhoneNumbers[0].PhoneNumber)
}

// Record 转换为落库模型，now 为服务端写入时间
func (d UserData) Record(now time.Time) *entity.User {
	return &entity.User{
		ID:        d.ID,
		Email:     d.PrimaryEmail(),
		FirstName: optional(d.FirstName),
		LastName:  optional(d.LastName),
		AvatarURL: optional(d.ImageURL),
		Phone:     d.PrimaryPhone(),
		UpdatedAt: now.UTC(),
	}
}

// optional 空串视为缺失，存 NULL
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
