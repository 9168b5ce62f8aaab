package repository

import (
	"context"

	"clerk-user-sync/domain/entity"
)

type UserRepository interface {
	// Upsert 以 email 为冲突键的单条 insert-or-update
	// 存在则覆盖 id、姓名、头像、手机号并刷新 updated_at，不存在则插入
	Upsert(ctx context.Context, user *entity.User) error

	// GetByID 根据 Clerk user_id 获取用户，不存在返回 (nil, nil)
	GetByID(ctx context.Context, userID string) (*entity.User, error)

	// Count 用户总数
	Count(ctx context.Context) (int64, error)
}
