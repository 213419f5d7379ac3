package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Mail     MailConfig     `mapstructure:"mail"`
	Report   ReportConfig   `mapstructure:"report"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 日志外发配置，Address 为空时只写 stdout
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// MinIOConfig 报表归档桶配置，Enabled 为 false 时跳过初始化
type MinIOConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// MailConfig Resend 发信配置
type MailConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	From           string `mapstructure:"from"`
	MaxRetries     int    `mapstructure:"max_retries"`
	BackoffSeconds int    `mapstructure:"backoff_seconds"`
}

// ReportConfig 定时报表配置，Cron 为每日触发表达式，
// 发给哪些用户由各自的发送偏好里的星期决定
type ReportConfig struct {
	Cron string `mapstructure:"cron"`
}
