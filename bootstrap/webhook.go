package bootstrap

import (
	"fmt"

	svix "github.com/svix/svix-webhooks/go"
)

// NewWebhookVerifier 启动时用共享密钥构造一次 Svix 验签器
// 密钥为空或格式错误直接失败，不允许跳过验签
func NewWebhookVerifier(secret string) (*svix.Webhook, error) {
	if secret == "" {
		return nil, fmt.Errorf("CLERK_WEBHOOK_SECRET 为空")
	}
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("初始化 Webhook 验证器失败: %w", err)
	}
	return wh, nil
}
