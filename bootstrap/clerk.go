package bootstrap

import (
	"github.com/clerk/clerk-sdk-go/v2"
)

// InitClerk 注册 Clerk API 密钥，JWT 校验会用它拉取 JWKS
func InitClerk(secretKey string) {
	clerk.SetKey(secretKey)
}
