package bootstrap

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 环境变量名
const (
	KeyDatabaseURL        = "DATABASE_URL"
	KeyDatabaseServiceKey = "DATABASE_SERVICE_KEY"
	KeyClerkSecretKey     = "CLERK_SECRET_KEY"
	KeyWebhookSecret      = "CLERK_WEBHOOK_SECRET"
	KeyPort               = "PORT"
	KeyLogLevel           = "LOG_LEVEL"
	KeyGinMode            = "GIN_MODE"
	KeyCORSAllowOrigins   = "CORS_ALLOW_ORIGINS"
)

// requiredKeys 缺任何一个都不允许启动，不能带着空密钥继续运行
var requiredKeys = []string{
	KeyDatabaseURL,
	KeyDatabaseServiceKey,
	KeyClerkSecretKey,
	KeyWebhookSecret,
}

// Env 环境变量配置结构
// 进程启动时构造一次，之后以参数形式注入各层
type Env struct {
	DatabaseURL        string   // PostgreSQL 连接字符串
	DatabaseServiceKey string   // 数据库服务角色凭据，写入 DSN 的密码部分
	ClerkSecretKey     string   // Clerk API 密钥
	WebhookSecret      string   // Clerk Webhook 签名密钥（whsec_...）
	Port               string   // 服务端口
	LogLevel           string   // debug | info | warn | error
	GinMode            string   // debug | release | test
	CORSAllowOrigins   []string // 移动端 Web 预览等来源
}

// LoadEnv 加载环境变量
// 开发环境从 .env 文件加载，生产环境从系统环境变量读取
func LoadEnv() (*Env, error) {
	// 尝试加载 .env 文件（生产环境可能没有）
	if err := godotenv.Load(); err != nil {
		log.Println("[Env] .env 文件未找到，将使用系统环境变量")
	}
	return loadFromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyGinMode, "release")
	v.SetDefault(KeyCORSAllowOrigins, "http://localhost:8081,http://localhost:19006")
	return v
}

func loadFromViper(v *viper.Viper) (*Env, error) {
	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(v.GetString(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("缺少必需环境变量: %s", strings.Join(missing, ", "))
	}

	env := &Env{
		DatabaseURL:        strings.TrimSpace(v.GetString(KeyDatabaseURL)),
		DatabaseServiceKey: strings.TrimSpace(v.GetString(KeyDatabaseServiceKey)),
		ClerkSecretKey:     strings.TrimSpace(v.GetString(KeyClerkSecretKey)),
		WebhookSecret:      strings.TrimSpace(v.GetString(KeyWebhookSecret)),
		Port:               v.GetString(KeyPort),
		LogLevel:           strings.ToLower(v.GetString(KeyLogLevel)),
		GinMode:            v.GetString(KeyGinMode),
		CORSAllowOrigins:   splitList(v.GetString(KeyCORSAllowOrigins)),
	}
	return env, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
