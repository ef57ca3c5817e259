package service

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port           string    // HTTP端口
	GinMode        string    // gin运行模式
	LogLevel       LogLevel  // 日志级别
	LogFormat      LogFormat // 日志格式
	LogFile        string    // 日志文件，为空时只输出到stderr
	TreeFile       string    // YAML家谱文件，为空时使用内置示例
	MetricsEnabled bool      // 是否暴露 /metrics
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		Port:           "8080",
		GinMode:        "release",
		LogLevel:       LogLevelInfo,
		LogFormat:      LogFormatText,
		MetricsEnabled: true,
	}
}

// LoadConfig 加载 .env 文件后从环境变量读取配置
//
// 未指定文件时尝试当前目录的 .env，文件不存在不算错误。
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, NewError(ErrConfig, "failed to load env file", err)
	}

	config := DefaultConfig()
	if v := os.Getenv("PORT"); v != "" {
		config.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		config.GinMode = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.LogLevel = LogLevel(v)
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		config.LogFormat = LogFormat(v)
	}
	config.LogFile = os.Getenv("LOG_FILE")
	config.TreeFile = os.Getenv("TREE_FILE")

	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, NewError(ErrConfig, "invalid METRICS_ENABLED", err).WithContext("value", v)
		}
		config.MetricsEnabled = enabled
	}

	return config, nil
}

// LoggerConfig 根据应用配置生成日志配置
func (c *Config) LoggerConfig() *LoggerConfig {
	lc := &LoggerConfig{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		Output: []string{"stderr"},
	}
	if c.LogFile != "" {
		lc.Output = append(lc.Output, "file")
		lc.FilePath = c.LogFile
	}
	return lc
}
