package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// LogLevel 日志级别
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug" // 调试
	LogLevelInfo  LogLevel = "info"  // 信息
	LogLevelWarn  LogLevel = "warn"  // 警告
	LogLevelError LogLevel = "error" // 错误
)

// LogFormat 日志格式
type LogFormat string

const (
	LogFormatText LogFormat = "text" // 文本格式
	LogFormatJSON LogFormat = "json" // JSON格式
)

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level    LogLevel  // 日志级别
	Format   LogFormat // 日志格式
	Output   []string  // 输出目标: stdout, stderr, file
	FilePath string    // 文件路径
	Writer   io.Writer // 直接指定输出，优先于 Output
}

// Logger 日志器
type Logger struct {
	slog   *slog.Logger
	closer io.Closer
}

// NewLogger 创建日志器实例
func NewLogger(config *LoggerConfig) *Logger {
	if config == nil {
		config = &LoggerConfig{}
	}

	out, closer := openOutputs(config)
	opts := &slog.HandlerOptions{Level: slogLevel(config.Level)}

	var handler slog.Handler
	switch config.Format {
	case LogFormatJSON:
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{
		slog:   slog.New(handler),
		closer: closer,
	}
}

// NopLogger 丢弃所有输出的日志器
func NopLogger() *Logger {
	return NewLogger(&LoggerConfig{Writer: io.Discard})
}

// openOutputs 初始化输出
func openOutputs(config *LoggerConfig) (io.Writer, io.Closer) {
	if config.Writer != nil {
		return config.Writer, nil
	}
	if len(config.Output) == 0 {
		return os.Stderr, nil
	}

	var (
		writers []io.Writer
		closer  io.Closer
	)
	for _, output := range config.Output {
		switch output {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		case "file":
			if config.FilePath == "" {
				continue
			}
			file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
				continue
			}
			writers = append(writers, file)
			closer = file
		}
	}
	if len(writers) == 0 {
		return os.Stderr, closer
	}
	return io.MultiWriter(writers...), closer
}

func slogLevel(level LogLevel) slog.Level {
	switch LogLevel(strings.ToLower(string(level))) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) log(level slog.Level, message string, args ...interface{}) {
	ctx := context.Background()
	if !l.slog.Enabled(ctx, level) {
		return
	}
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	l.slog.Log(ctx, level, message)
}

// Debug 记录调试日志
func (l *Logger) Debug(message string, args ...interface{}) {
	l.log(slog.LevelDebug, message, args...)
}

// Info 记录信息日志
func (l *Logger) Info(message string, args ...interface{}) {
	l.log(slog.LevelInfo, message, args...)
}

// Warn 记录警告日志
func (l *Logger) Warn(message string, args ...interface{}) {
	l.log(slog.LevelWarn, message, args...)
}

// Error 记录错误日志
func (l *Logger) Error(message string, args ...interface{}) {
	l.log(slog.LevelError, message, args...)
}

// WithFields 创建带字段的日志器
func (l *Logger) WithFields(fields map[string]string) *Logger {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(fields)*2)
	for _, k := range keys {
		attrs = append(attrs, k, fields[k])
	}
	return &Logger{slog: l.slog.With(attrs...)}
}

// Slog 返回底层的 slog.Logger
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Close 关闭文件输出
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
