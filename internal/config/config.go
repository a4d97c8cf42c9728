package config

import "time"

// Config 应用配置
type Config struct {
	// Env: 环境模式 (development, production, test)
	Env string `mapstructure:"env"`

	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Log        LogConfig        `mapstructure:"log"`
	Auth       AuthConfig       `mapstructure:"auth"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Moderation ModerationConfig `mapstructure:"moderation"`

	// AutoMigrate: 启动时自动建表并写入默认数据
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`

	// 连接池配置
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	ConnLifetime time.Duration `mapstructure:"conn_lifetime"`
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// 连接池配置
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level: 日志级别 (fatal, error, warn, info, debug, trace)
	Level string `mapstructure:"level"`
	// Format: 日志格式 (json, text)
	Format string `mapstructure:"format"`
}

// AuthConfig 认证配置
type AuthConfig struct {
	// JWTSecret: 管理员令牌签名密钥，生产环境必须显式配置
	JWTSecret string `mapstructure:"jwt_secret"`

	// TokenTTL: 令牌有效期
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// Enabled: 是否启用限流
	Enabled bool `mapstructure:"enabled"`

	// GlobalLimit: 全局 API 限制（单 IP、单窗口内的请求数）
	GlobalLimit  int           `mapstructure:"global_limit"`
	GlobalWindow time.Duration `mapstructure:"global_window"`

	// SubmitLimit: 帖子提交限制（单 IP、单窗口内的提交数）
	SubmitLimit  int           `mapstructure:"submit_limit"`
	SubmitWindow time.Duration `mapstructure:"submit_window"`
}

// ModerationConfig 审核相关配置
type ModerationConfig struct {
	// WebhookURL: 审核事件通知地址，留空则不发送
	WebhookURL string `mapstructure:"webhook_url"`

	// WebhookTimeout: 单次通知超时
	WebhookTimeout time.Duration `mapstructure:"webhook_timeout"`
}

// IsDevelopment 检查是否为开发环境
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction 检查是否为生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
