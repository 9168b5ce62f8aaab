package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"clerk-user-sync/bootstrap"
	"clerk-user-sync/domain/entity"
	"clerk-user-sync/repository"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm/logger"
)

var (
	force    bool
	truncate bool
)

var rootCmd = &cobra.Command{
	Use:   "cleardb",
	Short: "清空已同步的 Clerk 用户表（下一次 Webhook 投递会重新写入）",
	RunE:  run,
}

func init() {
	rootCmd.Flags().BoolVar(&force, "force", false, "跳过确认提示，强制执行清库")
	rootCmd.Flags().BoolVar(&truncate, "truncate", false, "使用 TRUNCATE（更快）")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ 未找到 .env 文件，使用系统环境变量")
	}

	v := viper.New()
	v.AutomaticEnv()
	databaseURL := v.GetString(bootstrap.KeyDatabaseURL)
	serviceKey := v.GetString(bootstrap.KeyDatabaseServiceKey)
	if databaseURL == "" || serviceKey == "" {
		return fmt.Errorf("%s 和 %s 必须设置", bootstrap.KeyDatabaseURL, bootstrap.KeyDatabaseServiceKey)
	}

	dsn, err := bootstrap.BuildDSN(databaseURL, serviceKey)
	if err != nil {
		return err
	}
	db, err := bootstrap.NewDatabase(dsn, logger.Warn)
	if err != nil {
		return err
	}

	ctx := context.Background()
	table := entity.User{}.TableName()
	count, err := repository.NewUserRepository(db).Count(ctx)
	if err != nil {
		return fmt.Errorf("统计 %s 失败: %w", table, err)
	}

	// 确认提示
	if !force {
		fmt.Printf("⚠️  警告：此操作将删除表 %s 中的 %d 条记录！\n", table, count)
		fmt.Print("\n确认执行清库操作？(yes/no): ")

		input, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))
		if input != "yes" && input != "y" {
			fmt.Println("❌ 操作已取消")
			return nil
		}
	}

	if truncate {
		err = db.WithContext(ctx).Exec(fmt.Sprintf("TRUNCATE TABLE %s", table)).Error
	} else {
		err = db.WithContext(ctx).Exec(fmt.Sprintf("DELETE FROM %s", table)).Error
	}
	if err != nil {
		return fmt.Errorf("清空表 %s 失败: %w", table, err)
	}

	fmt.Printf("✅ 已清空表: %s（%d 条）\n", table, count)
	return nil
}
