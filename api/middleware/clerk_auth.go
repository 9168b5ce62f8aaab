package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/gin-gonic/gin"
)

// TokenVerifier 校验会话 Token，返回 Clerk user_id
type TokenVerifier func(ctx context.Context, token string) (string, error)

// VerifyClerkToken 默认实现：Clerk SDK 会自动拉取公钥并验证签名、过期时间
func VerifyClerkToken(ctx context.Context, token string) (string, error) {
	claims, err := jwt.Verify(ctx, &jwt.VerifyParams{
		Token: token,
	})
	if err != nil {
		return "", err
	}
	return subject(claims), nil
}

func subject(claims *clerk.SessionClaims) string {
	if claims == nil {
		return ""
	}
	return claims.Subject
}

func ClerkAuth(verify TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 获取 Token (支持 Bearer Token)
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "缺少 Authorization 头"})
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		// 2. 验证 Token，不把校验细节返回给客户端
		userID, err := verify(c.Request.Context(), token)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token 无效"})
			return
		}

		// 3. 将用户信息注入上下文，供后续 Controller 使用
		c.Set(ContextKeyUserID, userID)

		c.Next()
	}
}
