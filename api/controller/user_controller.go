package controller

import (
	"errors"
	"net/http"
	"time"

	"clerk-user-sync/api/middleware"
	"clerk-user-sync/domain/entity"
	domainErrors "clerk-user-sync/domain/errors"
	"clerk-user-sync/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserController 用户资料 HTTP 控制器（供市场客户端读取自己的资料）
type UserController struct {
	syncUC *usecase.UserSyncUseCase
	log    *zap.Logger
}

// NewUserController 创建 UserController 实例
func NewUserController(syncUC *usecase.UserSyncUseCase, log *zap.Logger) *UserController {
	return &UserController{syncUC: syncUC, log: log}
}

// GetMe 获取当前登录用户
// GET /api/users/me
// Webhook 尚未同步时返回 404，客户端可稍后重试
func (uc *UserController) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "未获取到用户信息"})
		return
	}

	user, err := uc.syncUC.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "用户不存在"})
			return
		}
		middleware.RequestLog(c, uc.log).Error("[User] 查询用户失败", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "查询用户失败"})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
		Phone:     u.Phone,
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
