package service

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
)

// ErrorCode 错误码类型
type ErrorCode int

const (
	ErrSystem ErrorCode = iota + 1
	ErrConfig
	ErrValidation
	ErrNotFound
	ErrInvalidInput
	ErrInternal
)

// AppError 应用程序错误
type AppError struct {
	Code    ErrorCode              // 错误码
	Message string                 // 错误消息
	Err     error                  // 原始错误
	Stack   string                 // 堆栈信息
	Context map[string]interface{} // 上下文信息
}

// Error 实现error接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 实现errors.Unwrap接口
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 错误码相同即视为同一类错误，供 errors.Is 使用
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewError 创建新的应用程序错误
func NewError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
		Stack:   getStack(),
		Context: make(map[string]interface{}),
	}
}

// NotFound 创建未找到错误
func NotFound(format string, args ...interface{}) *AppError {
	return NewError(ErrNotFound, fmt.Sprintf(format, args...), nil)
}

// WithContext 添加上下文信息
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	e.Context[key] = value
	return e
}

// HasCode 检查错误码是否匹配
func (e *AppError) HasCode(code ErrorCode) bool {
	return e.Code == code
}

// CodeOf 提取错误码，非 AppError 返回 ErrInternal
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

// IsNotFound 是否为未找到错误
func IsNotFound(err error) bool {
	return err != nil && CodeOf(err) == ErrNotFound
}

// getStack 获取当前goroutine的堆栈信息
func getStack() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(fmt.Sprintf("%s:%d\n", frame.File, frame.Line))
		if !more {
			break
		}
	}
	return sb.String()
}

// ErrorHandler 错误处理服务
type ErrorHandler struct {
	logger *Logger
}

// NewErrorHandler 创建错误处理服务实例
func NewErrorHandler(logger *Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle 记录错误并返回对应的HTTP状态码
func (h *ErrorHandler) Handle(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch CodeOf(err) {
	case ErrNotFound:
		h.logger.Debug("lookup failed: %v", err)
		return http.StatusNotFound
	case ErrInvalidInput, ErrValidation:
		h.logger.Debug("rejected input: %v", err)
		return http.StatusBadRequest
	default:
		var appErr *AppError
		if errors.As(err, &appErr) {
			h.logger.Error("Error occurred: %v\nStack trace:\n%s", appErr, appErr.Stack)
		} else {
			h.logger.Error("Error occurred: %v", err)
		}
		return http.StatusInternalServerError
	}
}
