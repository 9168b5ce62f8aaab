package repository

import (
	"context"
	"errors"

	"clerk-user-sync/domain/entity"
	domainRepo "clerk-user-sync/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertColumns email 冲突时被覆盖的列
var upsertColumns = []string{"id", "first_name", "last_name", "avatar_url", "phone", "updated_at"}

// userRepository GORM 实现 UserRepository 接口
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 构造函数
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

// Upsert 创建或更新用户（Clerk Webhook 同步使用）
// 使用 PostgreSQL INSERT ... ON CONFLICT (email) DO UPDATE，一条语句完成，没有先读后写的竞态
// 同一邮箱并发投递时以最后一次写入为准
func (r *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}}, // 冲突字段
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(user).Error
}

// GetByID 根据 Clerk user_id 查询用户
func (r *userRepository) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.User{}).Count(&n).Error
	return n, err
}
