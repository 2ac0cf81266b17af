// internal/errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode 用于区分错误类别，测试中应比较错误码而不是错误文本。
type ErrorCode string

const (
	ErrUnknown ErrorCode = "UNKNOWN"

	// 配置文件相关
	ErrConfigIO     ErrorCode = "CONFIG_IO"     // 无法读取配置文件
	ErrConfigParse  ErrorCode = "CONFIG_PARSE"  // TOML 语法错误
	ErrConfigSchema ErrorCode = "CONFIG_SCHEMA" // 字段缺失或类型不对

	// 链接创建相关
	ErrLinkCreate ErrorCode = "LINK_CREATE"
)

// Error 是带错误码和附加信息的结构化错误。
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// New 创建一个新的 Error。
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf 创建一个带格式化信息的 Error。
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 用错误码包装已有错误。err 为 nil 时返回 nil。
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf 同 Wrap，信息可格式化。
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail 添加一条附加信息并返回自身，便于链式调用。
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode 判断 err 链中是否有指定错误码的 Error。
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetErrorCode 返回错误码，非 Error 类型时返回 ErrUnknown。
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails 返回附加信息，非 Error 类型时返回 nil。
func GetErrorDetails(err error) map[string]interface{} {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}
