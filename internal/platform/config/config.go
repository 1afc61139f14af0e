package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cfg 是一个全局变量，用于存储所有应用程序的配置
var Cfg *Config

// Config 结构体定义了应用程序的所有配置项
// 它与 config.yaml 文件的结构完全对应
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Alert     AlertConfig     `mapstructure:"alert"`
}

// ServerConfig 定义了服务器相关的配置
type ServerConfig struct {
	Mode    string     `mapstructure:"mode"`
	Address string     `mapstructure:"address"`
	Cors    CorsConfig `mapstructure:"cors"`
}

// CorsConfig 定义了CORS相关的配置
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig 定义了数据库和缓存相关的配置
type DatabaseConfig struct {
	Redis  RedisConfig  `mapstructure:"redis"`
	Sqlite SqliteConfig `mapstructure:"sqlite"`
}

// RedisConfig 定义了Redis的配置
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SqliteConfig 定义了SQLite数据库文件的配置
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// SchedulerConfig 定义了每日重置调度器的配置。
// Timezone 决定“日期边界”的本地时区；ResetHour/ResetMinute 是每天的触发时刻。
type SchedulerConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Timezone    string `mapstructure:"timezone"`
	ResetHour   int    `mapstructure:"resetHour"`
	ResetMinute int    `mapstructure:"resetMinute"`
	// CatchUpDays 限制启动补跑最多回溯的天数，防止长期停机后一次性处理过多日期
	CatchUpDays int `mapstructure:"catchUpDays"`
}

// AlertConfig 定义了系统告警日志的配置
type AlertConfig struct {
	RetentionDays int `mapstructure:"retentionDays"`
}

// Location 解析并返回调度器配置的时区。
// 配置缺失或非法时回退到UTC，保证日期边界始终有一个确定的定义。
func (c SchedulerConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		fmt.Printf("配置警告: 无法解析时区 '%s'，回退到UTC: %v\n", c.Timezone, err)
		return time.UTC
	}
	return loc
}

// LoadConfig 函数负责查找、加载和解析配置文件
// 它会在指定的路径中查找名为 config.yaml 的文件
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. 设置配置文件名和类型
	v.SetConfigName("config") // 文件名 (不带扩展名)
	v.SetConfigType("yaml")   // 文件类型

	// 2. 添加配置文件搜索路径
	// 可以添加多个路径，Viper会按顺序查找
	v.AddConfigPath("./config") // `config/config.yaml`
	v.AddConfigPath(".")        // `./config.yaml` (如果在根目录)

	// 3. 设置环境变量支持
	// 允许通过环境变量覆盖配置，例如 SCHEDULER_RESETHOUR=3
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. 合理的默认值，保证配置文件缺项时应用仍可启动
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.cors.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("database.sqlite.path", "habits.db")
	v.SetDefault("database.redis.address", "localhost:6379")
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.timezone", "UTC")
	v.SetDefault("scheduler.resetHour", 0)
	v.SetDefault("scheduler.resetMinute", 5)
	v.SetDefault("scheduler.catchUpDays", 7)
	v.SetDefault("alert.retentionDays", 30)

	// 5. 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		// 配置文件不存在时使用全部默认值，其它读取错误仍然上抛
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		fmt.Println("未找到config.yaml，使用默认配置。")
	}

	// 6. 将配置反序列化到结构体中
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 7. 将加载的配置赋值给全局变量
	Cfg = &cfg

	return Cfg, nil
}
