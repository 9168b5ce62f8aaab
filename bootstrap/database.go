package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"clerk-user-sync/domain/entity"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BuildDSN 把服务角色凭据写入连接串的密码部分
// databaseURL 格式: postgres://user@host:5432/dbname?sslmode=require
func BuildDSN(databaseURL, serviceKey string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", fmt.Errorf("DATABASE_URL 格式错误: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("DATABASE_URL 协议不支持: %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("DATABASE_URL 缺少主机地址")
	}

	username := "postgres"
	if u.User != nil && u.User.Username() != "" {
		username = u.User.Username()
	}
	u.User = url.UserPassword(username, serviceKey)
	return u.String(), nil
}

// NewDatabase 创建并配置 PostgreSQL 数据库连接
func NewDatabase(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败: %w", err)
	}

	// ========== 连接池配置 ==========
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取数据库实例失败: %w", err)
	}

	// 每个 Webhook 请求只有一次 upsert，少量空闲连接足够
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 自动迁移表结构（包含 email 唯一索引，ON CONFLICT 依赖它）
	if err := db.AutoMigrate(&entity.User{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// GormLogLevel 把应用日志级别映射到 GORM 的 SQL 日志级别
func GormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info // 开发时显示 SQL
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}
