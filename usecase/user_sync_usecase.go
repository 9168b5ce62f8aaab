package usecase

import (
	"context"
	"fmt"
	"time"

	"clerk-user-sync/domain/entity"
	domainErrors "clerk-user-sync/domain/errors"
	"clerk-user-sync/domain/event"
	"clerk-user-sync/domain/repository"
)

// SyncResult 一次事件处理的结果
type SyncResult struct {
	EventType event.Type
	Skipped   bool         // 非 user.created / user.updated，未写库
	User      *entity.User // 写入的记录，Skipped 时为 nil
}

// UserSyncUseCase 把 Clerk 事件应用到用户表
// 无状态：repo 和 clock 在启动时注入，可被并发调用
//
// 同一事件重复投递是安全的：按 email upsert 天然幂等，
// 所以不维护 svix-id 去重表
type UserSyncUseCase struct {
	repo  repository.UserRepository
	clock func() time.Time
}

// NewUserSyncUseCase 构造函数，依赖注入
func NewUserSyncUseCase(repo repository.UserRepository, clock func() time.Time) *UserSyncUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &UserSyncUseCase{repo: repo, clock: clock}
}

// Sync 处理一个已验签的事件
// 用户事件恰好调用一次 Upsert，其他事件不访问数据库
func (uc *UserSyncUseCase) Sync(ctx context.Context, evt event.Event) (SyncResult, error) {
	switch e := evt.(type) {
	case event.UserCreated:
		return uc.upsert(ctx, e.Type(), e.User)
	case event.UserUpdated:
		return uc.upsert(ctx, e.Type(), e.User)
	case event.Other:
		return SyncResult{EventType: e.Type(), Skipped: true}, nil
	default:
		return SyncResult{}, fmt.Errorf("%w: unsupported event %T", domainErrors.ErrMalformedPayload, evt)
	}
}

func (uc *UserSyncUseCase) upsert(ctx context.Context, typ event.Type, data event.UserData) (SyncResult, error) {
	user := data.Record(uc.clock())
	result := SyncResult{EventType: typ, User: user}

	if err := uc.repo.Upsert(ctx, user); err != nil {
		return result, fmt.Errorf("%w: %v", domainErrors.ErrStoreWriteFailure, err)
	}
	return result, nil
}

// Profile 获取已同步的用户
func (uc *UserSyncUseCase) Profile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainErrors.ErrUserNotFound
	}
	return user, nil
}
